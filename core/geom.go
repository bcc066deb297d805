package core

import (
	"github.com/ctessum/geom"

	"github.com/kpfaulkner/point2d/util"
)

// FromGeom converts a geom.Point, validating its coordinates as New does.
func FromGeom(g geom.Point) (Point2D, error) {
	return New(g.X, g.Y)
}

func (p Point2D) Geom() geom.Point {
	return geom.Point{X: p.x, Y: p.y}
}

// Bounds returns the smallest axis-aligned box containing every point, or nil
// for an empty slice.
func Bounds(points []Point2D) *geom.Bounds {
	if len(points) == 0 {
		return nil
	}

	b := &geom.Bounds{Min: points[0].Geom(), Max: points[0].Geom()}
	for _, p := range points[1:] {
		b.Min.X = util.Min(b.Min.X, p.x)
		b.Min.Y = util.Min(b.Min.Y, p.y)
		b.Max.X = util.Max(b.Max.X, p.x)
		b.Max.Y = util.Max(b.Max.Y, p.y)
	}
	return b
}
