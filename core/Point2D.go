package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/kpfaulkner/point2d/util"
)

var ErrInvalidCoordinate = errors.New("coordinate must be finite")

// Point2D is an immutable point in the plane with finite real coordinates.
// The zero value is the origin. Points are comparable with == and may be
// used as map keys.
type Point2D struct {
	x float64
	y float64
}

// New returns the point (x, y). Either coordinate being NaN or an infinity
// yields an error wrapping ErrInvalidCoordinate. A coordinate of -0.0 is
// stored as +0.0 so that equal points share a single representation.
func New(x float64, y float64) (Point2D, error) {
	if !util.IsFinite(x) {
		return Point2D{}, fmt.Errorf("x=%v: %w", x, ErrInvalidCoordinate)
	}
	if !util.IsFinite(y) {
		return Point2D{}, fmt.Errorf("y=%v: %w", y, ErrInvalidCoordinate)
	}

	// -0.0 == 0.0, so both zeros collapse to +0.0
	if x == 0 {
		x = 0
	}
	if y == 0 {
		y = 0
	}
	return Point2D{x: x, y: y}, nil
}

// MustNew is New for literal coordinates known to be finite. It panics on error.
func MustNew(x float64, y float64) Point2D {
	p, err := New(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Point2D) X() float64 {
	return p.x
}

func (p Point2D) Y() float64 {
	return p.y
}

// Radius is the polar radius sqrt(x*x + y*y).
func (p Point2D) Radius() float64 {
	return math.Sqrt(p.x*p.x + p.y*p.y)
}

// Angle is the polar angle atan2(y, x) in (-pi, pi]. The origin has angle 0.
func (p Point2D) Angle() float64 {
	return math.Atan2(p.y, p.x)
}

// angleToward is the angle of the vector from p to q, in (-pi, pi].
func (p Point2D) angleToward(q Point2D) float64 {
	return math.Atan2(q.y-p.y, q.x-p.x)
}

// DistanceTo is the Euclidean distance between p and q.
func (p Point2D) DistanceTo(q Point2D) float64 {
	return math.Sqrt(p.SquaredDistanceTo(q))
}

// SquaredDistanceTo is the squared Euclidean distance between p and q.
func (p Point2D) SquaredDistanceTo(q Point2D) float64 {
	dx := p.x - q.x
	dy := p.y - q.y
	return dx*dx + dy*dy
}

// Compare is the natural ordering: by y, ties broken by x. It returns 0
// exactly when p.Equals(q).
func (p Point2D) Compare(q Point2D) int {
	if c := util.Compare3(p.y, q.y); c != 0 {
		return c
	}
	return util.Compare3(p.x, q.x)
}

func (p Point2D) Equals(q Point2D) bool {
	return p.x == q.x && p.y == q.y
}

// Hash combines the hashes of both coordinates as 31*hash(x) + hash(y),
// folding each coordinate's IEEE 754 bits into 32 bits.
func (p Point2D) Hash() int32 {
	return 31*hashFloat(p.x) + hashFloat(p.y)
}

func hashFloat(v float64) int32 {
	bits := math.Float64bits(v)
	return int32(bits ^ (bits >> 32))
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// Draw sends p to the renderer as a single point.
func (p Point2D) Draw(r Renderer) {
	r.DrawPoint(p.x, p.y)
}

// DrawTo sends the segment from p to q to the renderer.
func (p Point2D) DrawTo(r Renderer, q Point2D) {
	r.DrawLine(p.x, p.y, q.x, q.y)
}
