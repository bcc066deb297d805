package core

import (
	"fmt"

	"github.com/kpfaulkner/point2d/util"
)

// Orientation classifies the turn made by three points.
type Orientation int

const (
	Clockwise Orientation = iota - 1
	Collinear
	CounterClockwise
)

var orientationLabels = [3]string{"Clockwise", "Collinear", "CounterClockwise"}

func (o Orientation) String() string {
	if o < Clockwise || o > CounterClockwise {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationLabels[int(o+1)]
}

// SignedArea2 returns twice the signed area of triangle a-b-c. It is positive
// when a->b->c turns counterclockwise, negative when clockwise and zero when
// the points are collinear.
func SignedArea2(a Point2D, b Point2D, c Point2D) float64 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

// TurnDirection is the sign of SignedArea2(a, b, c). The comparison against
// zero is exact; callers wanting a tolerance must round their inputs.
func TurnDirection(a Point2D, b Point2D, c Point2D) Orientation {
	return Orientation(util.Sign(SignedArea2(a, b, c)))
}
