package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/pegsolve/evalplot/palette"
	"github.com/pegsolve/evalplot/style"
	"github.com/pegsolve/evalplot/ticker"
)

var (
	outFlag    = flag.String("out", "filter-sizes.png", "Output PNG path")
	minorFlag  = flag.Bool("minor", false, "Label minor ticks on the size axis")
	widthFlag  = flag.Float64("width", 6, "Chart width in inches")
	heightFlag = flag.Float64("height", 4, "Chart height in inches")
)

func main() {
	flag.Parse()

	theme := style.GGPlot()
	p := style.New(theme)
	p.Title.Text = "Filter size by modulus class"
	p.X.Label.Text = "pegs remaining"
	p.Y.Label.Text = "table size"
	ticker.SetupBytes(&p.Y, *minorFlag)

	for _, cat := range palette.Categories() {
		s, err := plotter.NewScatter(sampleSeries(cat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build %s series: %v\n", cat, err)
			os.Exit(1)
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  cat.Color(),
			Radius: vg.Points(3),
			Shape:  style.Glyph(cat.Marker()),
		}
		p.Add(s)
		p.Legend.Add(legendLabel(cat), s)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	w := vg.Length(*widthFlag) * vg.Inch
	h := vg.Length(*heightFlag) * vg.Inch
	if err := writePNG(theme, p, w, h, *outFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *outFlag, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%s, %d DPI)\n", *outFlag, theme.Name, theme.DPI)
}

// sampleSeries fakes the size curve of one category's position filters:
// per-peg tables swell toward the mid-game bulge and shrink again at the
// endgame.
func sampleSeries(cat palette.Category) plotter.XYs {
	scale := 1.0
	switch cat {
	case palette.Round:
		scale = 1.35
	case palette.RoundMinusOne:
		scale = 0.8
	}

	pts := make(plotter.XYs, 0, 25)
	for pegs := 4; pegs <= 28; pegs++ {
		d := float64(pegs - 16)
		size := scale * 6e6 * math.Exp(-d*d/40)
		if size < 256 {
			size = 256
		}
		pts = append(pts, plotter.XY{X: float64(pegs), Y: size})
	}
	return pts
}

// legendLabel keeps TeX happy: raw underscores in labels would not parse.
func legendLabel(cat palette.Category) string {
	return strings.ReplaceAll(cat.String(), "_", " ")
}

func writePNG(t style.Theme, p *plot.Plot, w, h vg.Length, path string) error {
	c := t.Raster(w, h)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
