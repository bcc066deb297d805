package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnDirection(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  Point2D
		expected Orientation
		area2    float64
	}{
		{"ccw", MustNew(0, 0), MustNew(1, 0), MustNew(0, 1), CounterClockwise, 1},
		{"cw", MustNew(0, 0), MustNew(0, 1), MustNew(1, 0), Clockwise, -1},
		{"collinear", MustNew(0, 0), MustNew(1, 1), MustNew(3, 3), Collinear, 0},
		{"collinear reversed", MustNew(0, 0), MustNew(3, 3), MustNew(-1, -1), Collinear, 0},
		{"repeated point", MustNew(2, 5), MustNew(2, 5), MustNew(-7, 1), Collinear, 0},
		{"large triangle", MustNew(-2, -2), MustNew(4, -2), MustNew(4, 6), CounterClockwise, 48},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TurnDirection(tc.a, tc.b, tc.c))
			assert.Equal(t, tc.area2, SignedArea2(tc.a, tc.b, tc.c))
		})
	}
}

func TestTurnDirectionProperties(t *testing.T) {
	for _, points := range [][]Point2D{randomPoints(90, 3), gridPoints(90, 3, 4)} {
		for i := 0; i+2 < len(points); i += 3 {
			a, b, c := points[i], points[i+1], points[i+2]
			turn := TurnDirection(a, b, c)
			area := SignedArea2(a, b, c)

			assert.Equal(t, turn, -TurnDirection(a, c, b), "swap endpoints of %v %v %v", a, b, c)
			switch turn {
			case CounterClockwise:
				assert.Greater(t, area, 0.0)
			case Clockwise:
				assert.Less(t, area, 0.0)
			case Collinear:
				assert.Equal(t, 0.0, area)
			default:
				t.Fatalf("unexpected orientation %d", turn)
			}
		}
	}
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "Clockwise", Clockwise.String())
	assert.Equal(t, "Collinear", Collinear.String())
	assert.Equal(t, "CounterClockwise", CounterClockwise.String())
	assert.Equal(t, "Orientation(5)", Orientation(5).String())
}
