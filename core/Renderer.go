package core

// Renderer is a drawing surface accepting coordinates in user space.
type Renderer interface {
	DrawPoint(x float64, y float64)
	DrawLine(x0 float64, y0 float64, x1 float64, y1 float64)
}
