package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"
	"time"

	"github.com/kpfaulkner/point2d/core"
	"github.com/kpfaulkner/point2d/options"
	"github.com/kpfaulkner/point2d/render"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

// drawer is what both renderers offer on top of core.Renderer.
type drawer interface {
	core.Renderer
	SetPenColour(colour color.Color)
}

type config struct {
	x0       float64
	y0       float64
	n        int
	outfile  string
	plotfile string
	size     int
	seed     uint64
	profile  bool
	debug    bool
}

func main() {
	cfg := config{}
	flag.Float64Var(&cfg.x0, "x0", 2, "pivot x coordinate")
	flag.Float64Var(&cfg.y0, "y0", 2, "pivot y coordinate")
	flag.IntVar(&cfg.n, "n", 3, "number of random points")
	flag.StringVar(&cfg.outfile, "o", "", "output png file")
	flag.StringVar(&cfg.plotfile, "plot", "", "optional output svg file rendered with gonum/plot")
	flag.IntVar(&cfg.size, "size", 800, "canvas size in pixels")
	flag.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "random seed")
	flag.BoolVar(&cfg.profile, "profile", false, "write a CPU profile to the current directory")
	flag.BoolVar(&cfg.debug, "debug", false, "debug logging")
	flag.Parse()

	if cfg.outfile == "" {
		fmt.Printf("output file must be specified\n")
		os.Exit(1)
	}
	if cfg.debug {
		log.SetLevel(log.DebugLevel)
	}

	// run returns rather than exits so its deferred profile stop always happens
	if err := run(cfg); err != nil {
		log.Fatalf("polarplot: %v", err)
	}
	log.Infof("wrote %s", cfg.outfile)
}

func run(cfg config) error {
	if cfg.profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if cfg.n < 0 {
		return fmt.Errorf("number of points %d must not be negative", cfg.n)
	}

	pivot, err := core.New(cfg.x0, cfg.y0)
	if err != nil {
		return fmt.Errorf("bad pivot: %w", err)
	}

	canvas, err := render.NewCanvas(&options.RenderOptions{
		Debug:     cfg.debug,
		Width:     cfg.size,
		Height:    cfg.size,
		XMax:      100,
		YMax:      100,
		PenRadius: 0.005,
	})
	if err != nil {
		return fmt.Errorf("unable to create canvas: %w", err)
	}
	plotRenderer := render.NewPlotRenderer(fmt.Sprintf("polar order around %v", pivot))

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed))
	points := make([]core.Point2D, cfg.n)
	for i := range points {
		points[i] = core.MustNew(float64(rng.IntN(100)), float64(rng.IntN(100)))
	}

	start := time.Now()
	core.Sort(points, pivot.PolarOrder())
	log.Infof("sorted %d points around %v in %d us", len(points), pivot, time.Since(start).Microseconds())

	for _, r := range []drawer{canvas, plotRenderer} {
		drawPolar(r, pivot, points)
	}

	buf := new(bytes.Buffer)
	if err := canvas.WritePNG(buf); err != nil {
		return fmt.Errorf("unable to encode png: %w", err)
	}
	if err := os.WriteFile(cfg.outfile, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("unable to write %s: %w", cfg.outfile, err)
	}

	if cfg.plotfile != "" {
		f, err := os.Create(cfg.plotfile)
		if err != nil {
			return fmt.Errorf("unable to create %s: %w", cfg.plotfile, err)
		}
		defer f.Close()
		if err := plotRenderer.Render(f, 6*vg.Inch, 6*vg.Inch, "svg"); err != nil {
			return fmt.Errorf("unable to write plot: %w", err)
		}
	}
	return nil
}

// drawPolar draws the points, the pivot in red, then a green segment from the
// pivot to each point in the order given.
func drawPolar(r drawer, pivot core.Point2D, sorted []core.Point2D) {
	for _, p := range sorted {
		p.Draw(r)
	}

	if c, ok := r.(*render.Canvas); ok {
		c.SetPenRadius(0.02)
	}
	r.SetPenColour(red)
	pivot.Draw(r)

	if c, ok := r.(*render.Canvas); ok {
		c.SetPenRadius(options.DefaultPenRadius)
	}
	r.SetPenColour(green)
	for _, p := range sorted {
		pivot.DrawTo(r, p)
	}
}
