package options

import (
	"image/color"
)

const (
	DefaultCanvasSize = 512
	DefaultPenRadius  = 0.002
)

// RenderOptions configures a drawing surface. Scales map user coordinates to
// the canvas: XMin..XMax spans the width and YMin..YMax the height, with y
// increasing upwards. PenRadius is a fraction of the canvas width.
type RenderOptions struct {
	Debug     bool
	Width     int
	Height    int
	XMin      float64
	XMax      float64
	YMin      float64
	YMax      float64
	PenRadius float64
	PenColour color.Color
}

// NewRenderOptions returns defaults overlaid with any non-zero field of options.
func NewRenderOptions(options *RenderOptions) *RenderOptions {

	opt := &RenderOptions{
		Width:     DefaultCanvasSize,
		Height:    DefaultCanvasSize,
		XMin:      0,
		XMax:      1,
		YMin:      0,
		YMax:      1,
		PenRadius: DefaultPenRadius,
		PenColour: color.Black,
	}
	if options != nil {
		opt.Debug = options.Debug
		if options.Width != 0 {
			opt.Width = options.Width
		}
		if options.Height != 0 {
			opt.Height = options.Height
		}
		if options.XMin != 0 || options.XMax != 0 {
			opt.XMin, opt.XMax = options.XMin, options.XMax
		}
		if options.YMin != 0 || options.YMax != 0 {
			opt.YMin, opt.YMax = options.YMin, options.YMax
		}
		if options.PenRadius != 0 {
			opt.PenRadius = options.PenRadius
		}
		if options.PenColour != nil {
			opt.PenColour = options.PenColour
		}
	}
	return opt
}
