package render

import (
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// mark is a run of coordinates drawn in one colour.
type mark struct {
	xys    plotter.XYs
	colour color.Color
}

// PlotRenderer records drawing commands and turns them into a gonum plot,
// with one scatter per pen colour used for points and every segment as its
// own line. It satisfies core.Renderer.
type PlotRenderer struct {
	title     string
	penColour color.Color
	points    []mark
	segments  []mark
}

func NewPlotRenderer(title string) *PlotRenderer {
	return &PlotRenderer{title: title, penColour: color.Black}
}

// SetPenColour applies to points and segments drawn afterwards.
func (r *PlotRenderer) SetPenColour(colour color.Color) {
	r.penColour = colour
}

func (r *PlotRenderer) DrawPoint(x float64, y float64) {
	for i := range r.points {
		if r.points[i].colour == r.penColour {
			r.points[i].xys = append(r.points[i].xys, plotter.XY{X: x, Y: y})
			return
		}
	}
	r.points = append(r.points, mark{xys: plotter.XYs{{X: x, Y: y}}, colour: r.penColour})
}

func (r *PlotRenderer) DrawLine(x0 float64, y0 float64, x1 float64, y1 float64) {
	r.segments = append(r.segments, mark{
		xys:    plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}},
		colour: r.penColour,
	})
}

// Plot builds a new plot holding everything drawn so far.
func (r *PlotRenderer) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.title

	for _, m := range r.points {
		scatter, err := plotter.NewScatter(m.xys)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Color = m.colour
		p.Add(scatter)
	}

	for _, s := range r.segments {
		line, err := plotter.NewLine(s.xys)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = s.colour
		p.Add(line)
	}
	return p, nil
}

// Render writes the plot in the given format ("png", "svg", "pdf", ...).
func (r *PlotRenderer) Render(output io.Writer, width vg.Length, height vg.Length, format string) error {
	p, err := r.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(output)
	return err
}
