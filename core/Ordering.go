package core

import (
	"slices"

	"github.com/kpfaulkner/point2d/util"
)

// Ordering is a three-way comparison over points returning -1, 0 or +1.
// It has the shape expected by slices.SortFunc and slices.SortStableFunc.
type Ordering func(p Point2D, q Point2D) int

// ByX compares x only. Points sharing an x compare equal, so ByX alone is
// not a total order on distinct points.
func ByX(p Point2D, q Point2D) int {
	return util.Compare3(p.x, q.x)
}

// ByY compares y only.
func ByY(p Point2D, q Point2D) int {
	return util.Compare3(p.y, q.y)
}

// ByYThenX is the natural ordering of Point2D, see Point2D.Compare.
func ByYThenX(p Point2D, q Point2D) int {
	return p.Compare(q)
}

// ByRadius compares distance from the origin using squared radii.
func ByRadius(p Point2D, q Point2D) int {
	return util.Compare3(p.x*p.x+p.y*p.y, q.x*q.x+q.y*q.y)
}

// PolarOrder orders points by the angle they make around p, measured in
// [0, 2pi) from the positive x-axis. No trigonometry is involved: points in
// the upper half-plane (dy >= 0) come before those in the lower half, and
// within a half-plane the orientation test decides. Points at the same angle
// compare equal regardless of their distance from p.
func (p Point2D) PolarOrder() Ordering {
	return func(q1 Point2D, q2 Point2D) int {
		dx1 := q1.x - p.x
		dy1 := q1.y - p.y
		dx2 := q2.x - p.x
		dy2 := q2.y - p.y

		switch {
		case dy1 >= 0 && dy2 < 0:
			// q1 above, q2 below
			return -1
		case dy2 >= 0 && dy1 < 0:
			// q1 below, q2 above
			return +1
		case dy1 == 0 && dy2 == 0:
			// both on the horizontal through p
			switch {
			case dx1 >= 0 && dx2 < 0:
				return -1
			case dx2 >= 0 && dx1 < 0:
				return +1
			default:
				return 0
			}
		default:
			// same half-plane; a counterclockwise turn p->q1->q2 means q1 comes first
			return -int(TurnDirection(p, q1, q2))
		}
	}
}

// Atan2Order orders points by atan2 of their offset from p, in (-pi, pi].
// Points on the horizontal ray left of p sort last, at pi.
func (p Point2D) Atan2Order() Ordering {
	return func(q1 Point2D, q2 Point2D) int {
		return util.Compare3(p.angleToward(q1), p.angleToward(q2))
	}
}

// DistanceOrder orders points by their distance to p.
func (p Point2D) DistanceOrder() Ordering {
	return func(q1 Point2D, q2 Point2D) int {
		return util.Compare3(p.SquaredDistanceTo(q1), p.SquaredDistanceTo(q2))
	}
}

// Sort stably sorts points in place by the given ordering.
func Sort(points []Point2D, by Ordering) {
	slices.SortStableFunc(points, by)
}
