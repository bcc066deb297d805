package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/kpfaulkner/point2d/options"
	"github.com/kpfaulkner/point2d/util"
	log "github.com/sirupsen/logrus"
)

// Canvas is a raster drawing surface. It satisfies core.Renderer. With
// RenderOptions.Debug set, drawing outside the surface is logged.
type Canvas struct {
	opts      *options.RenderOptions
	img       *image.RGBA
	penColour color.Color
	penRadius float64
}

func NewCanvas(opts *options.RenderOptions) (*Canvas, error) {
	opt := options.NewRenderOptions(opts)
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d must be positive", opt.Width, opt.Height)
	}
	if opt.XMin == opt.XMax || opt.YMin == opt.YMax {
		return nil, errors.New("canvas scale ranges must not be empty")
	}
	if opt.PenRadius < 0 {
		return nil, fmt.Errorf("pen radius %v must not be negative", opt.PenRadius)
	}

	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Canvas{
		opts:      opt,
		img:       img,
		penColour: opt.PenColour,
		penRadius: opt.PenRadius,
	}, nil
}

func (c *Canvas) SetPenColour(colour color.Color) {
	c.penColour = colour
}

// SetPenRadius sets the pen radius as a fraction of the canvas width.
// A negative radius is treated as zero.
func (c *Canvas) SetPenRadius(radius float64) {
	c.penRadius = util.Max(radius, 0)
}

func (c *Canvas) Image() image.Image {
	return c.img
}

func (c *Canvas) WritePNG(output io.Writer) error {
	return png.Encode(output, c.img)
}

func (c *Canvas) DrawPoint(x float64, y float64) {
	px, py := c.scaleX(x), c.scaleY(y)
	if !c.inside(px, py) {
		if c.opts.Debug {
			log.Debugf("point (%v, %v) lies outside the canvas", x, y)
		}
		minX, minY, maxX, maxY := c.clipRect()
		if px < minX || px > maxX || py < minY || py > maxY {
			return
		}
	}
	c.dot(px, py)
}

func (c *Canvas) DrawLine(x0 float64, y0 float64, x1 float64, y1 float64) {
	px0, py0 := c.scaleX(x0), c.scaleY(y0)
	px1, py1 := c.scaleX(x1), c.scaleY(y1)
	if !c.inside(px0, py0) || !c.inside(px1, py1) {
		if c.opts.Debug {
			log.Debugf("segment (%v, %v)-(%v, %v) leaves the canvas", x0, y0, x1, y1)
		}
		minX, minY, maxX, maxY := c.clipRect()
		var ok bool
		px0, py0, px1, py1, ok = clipSegment(px0, py0, px1, py1, minX, minY, maxX, maxY)
		if !ok {
			return
		}
	}

	steps := int(math.Ceil(util.Max(math.Abs(px1-px0), math.Abs(py1-py0))))
	if steps == 0 {
		c.dot(px0, py0)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.dot(px0+t*(px1-px0), py0+t*(py1-py0))
	}
}

// clipRect is the pixel rectangle a dot can touch, the surface grown by the pen radius.
func (c *Canvas) clipRect() (float64, float64, float64, float64) {
	r := util.Max(c.penRadius*float64(c.opts.Width), 1)
	return -r, -r, float64(c.opts.Width) + r, float64(c.opts.Height) + r
}

// clipSegment clips (x0, y0)-(x1, y1) to the rectangle using Liang-Barsky.
// Differences are taken on halved coordinates so that far but finite
// endpoints do not overflow, and a clipped endpoint lands exactly on the edge
// that clipped it. ok is false when nothing of the segment remains.
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx := x1/2 - x0/2
	dy := y1/2 - y0/2
	t0, t1 := 0.0, 1.0
	enter, leave := -1, -1

	edges := [4][2]float64{
		{-dx, x0/2 - minX/2},
		{dx, maxX/2 - x0/2},
		{-dy, y0/2 - minY/2},
		{dy, maxY/2 - y0/2},
	}
	for i, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 && r > t0 {
			t0, enter = r, i
		} else if p > 0 && r < t1 {
			t1, leave = r, i
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}

	onEdge := func(x, y, t float64, edge int) (float64, float64) {
		if edge < 0 {
			return x, y
		}
		x, y = x0+t*dx+t*dx, y0+t*dy+t*dy
		switch edge {
		case 0:
			x = minX
		case 1:
			x = maxX
		case 2:
			y = minY
		case 3:
			y = maxY
		}
		return x, y
	}
	cx0, cy0 := onEdge(x0, y0, t0, enter)
	cx1, cy1 := onEdge(x1, y1, t1, leave)
	return cx0, cy0, cx1, cy1, true
}

// scaleX maps a user x coordinate to a pixel column.
func (c *Canvas) scaleX(x float64) float64 {
	return finite(float64(c.opts.Width) * (x/2 - c.opts.XMin/2) / (c.opts.XMax/2 - c.opts.XMin/2))
}

// scaleY maps a user y coordinate to a pixel row; rows grow downwards.
func (c *Canvas) scaleY(y float64) float64 {
	return finite(float64(c.opts.Height) * (c.opts.YMax/2 - y/2) / (c.opts.YMax/2 - c.opts.YMin/2))
}

// finite saturates an overflowed pixel coordinate to the largest float.
func finite(v float64) float64 {
	if math.IsInf(v, 0) {
		return math.Copysign(math.MaxFloat64, v)
	}
	return v
}

func (c *Canvas) inside(px float64, py float64) bool {
	return px >= 0 && py >= 0 && px <= float64(c.opts.Width) && py <= float64(c.opts.Height)
}

// dot paints a filled disc of the current pen radius centred on pixel (px, py).
func (c *Canvas) dot(px float64, py float64) {
	r := c.penRadius * float64(c.opts.Width)
	if r <= 1 {
		c.img.Set(int(math.Round(px)), int(math.Round(py)), c.penColour)
		return
	}

	bounds := c.img.Bounds()
	minX := util.Clamp3(int(math.Floor(px-r)), bounds.Min.X, bounds.Max.X)
	maxX := util.Clamp3(int(math.Ceil(px+r)), bounds.Min.X, bounds.Max.X)
	minY := util.Clamp3(int(math.Floor(py-r)), bounds.Min.Y, bounds.Max.Y)
	maxY := util.Clamp3(int(math.Ceil(py+r)), bounds.Min.Y, bounds.Max.Y)
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			dx := float64(x) + 0.5 - px
			dy := float64(y) + 0.5 - py
			if dx*dx+dy*dy <= r*r {
				c.img.Set(x, y, c.penColour)
			}
		}
	}
}
