package core

import (
	"math/rand/v2"
)

// randomPoints returns n reproducible points with coordinates in [-100, 100).
func randomPoints(n int, seed uint64) []Point2D {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	points := make([]Point2D, n)
	for i := range points {
		points[i] = MustNew(rng.Float64()*200-100, rng.Float64()*200-100)
	}
	return points
}

// gridPoints returns n reproducible points on the integer grid [-r, r]^2, which
// produces plenty of collinear and duplicate configurations.
func gridPoints(n int, r int, seed uint64) []Point2D {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	points := make([]Point2D, n)
	for i := range points {
		points[i] = MustNew(float64(rng.IntN(2*r+1)-r), float64(rng.IntN(2*r+1)-r))
	}
	return points
}

type drawCall struct {
	line           bool
	x0, y0, x1, y1 float64
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawPoint(x float64, y float64) {
	r.calls = append(r.calls, drawCall{x0: x, y0: y})
}

func (r *recordingRenderer) DrawLine(x0 float64, y0 float64, x1 float64, y1 float64) {
	r.calls = append(r.calls, drawCall{line: true, x0: x0, y0: y0, x1: x1, y1: y1})
}
