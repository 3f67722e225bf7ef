// Package style carries the shared look of the evaluation charts.
package style

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Theme is the complete set of appearance parameters a chart is built
// with. Construct one, pass it to New, and keep it unchanged afterwards;
// nothing in this package holds theme state.
type Theme struct {
	// Name identifies the theme in tooling output.
	Name string

	// DPI is the raster resolution used by Raster and, when TeX is set,
	// by the TeX text handler.
	DPI int

	// Background fills the plot panel.
	Background color.Color
	// GridColor colors the grid lines; GridWidth sets their stroke width.
	GridColor color.Color
	GridWidth vg.Length

	// Text colors titles, axis labels, and tick labels.
	Text color.Color

	// Font is the typeface for all chart text, at the base size used by
	// axis labels. Tick and legend text render slightly smaller, titles
	// slightly larger.
	Font font.Font

	// TeX renders all text through the LaTeX handler.
	TeX bool
}

// GGPlot returns the theme every chart in the pipeline uses: light gray
// panel with a white grid, serif text rendered through TeX, and 300 DPI
// raster output.
func GGPlot() Theme {
	return Theme{
		Name:       "ggplot",
		DPI:        300,
		Background: color.Gray{Y: 0xe5},
		GridColor:  color.White,
		GridWidth:  vg.Points(1),
		Text:       color.Gray{Y: 0x55},
		Font: font.Font{
			Typeface: "Liberation",
			Variant:  "Serif",
			Size:     vg.Points(11),
		},
		TeX: true,
	}
}

// New returns an empty plot in the theme's look: styled axes, title and
// legend plus the theme's grid. Series, labels, and tickers are the
// caller's business.
func New(t Theme) *plot.Plot {
	p := plot.New()
	p.Add(t.Grid())
	t.Apply(p)
	return p
}

// Apply restyles p in place. It only assigns appearance fields, so
// applying a theme twice, or a second theme over a first, leaves the plot
// in exactly the last theme's look.
func (t Theme) Apply(p *plot.Plot) {
	p.BackgroundColor = t.Background

	small := t.Font
	small.Size = t.Font.Size * 0.85

	p.Title.TextStyle.Color = t.Text
	p.Title.TextStyle.Font = t.Font
	p.Title.TextStyle.Font.Size = t.Font.Size * 1.2

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Color = t.Text
		ax.Label.TextStyle.Font = t.Font
		// No spine: the axis line vanishes into the panel, only ticks
		// and the grid mark positions.
		ax.LineStyle.Color = t.Background
		ax.Tick.LineStyle.Color = t.Text
		ax.Tick.Label.Color = t.Text
		ax.Tick.Label.Font = small
	}

	p.Legend.TextStyle.Color = t.Text
	p.Legend.TextStyle.Font = small

	var h text.Handler = text.Plain{Fonts: font.DefaultCache}
	if t.TeX {
		// Latex does not default its font cache the way Plain does.
		h = &text.Latex{Fonts: font.DefaultCache, DPI: float64(t.DPI)}
	}
	p.Title.TextStyle.Handler = h
	p.X.Label.TextStyle.Handler = h
	p.Y.Label.TextStyle.Handler = h
	p.X.Tick.Label.Handler = h
	p.Y.Tick.Label.Handler = h
	p.Legend.TextStyle.Handler = h
}

// Grid returns grid lines in the theme's color and width, for plots not
// created by New.
func (t Theme) Grid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical = draw.LineStyle{Color: t.GridColor, Width: t.GridWidth}
	g.Horizontal = draw.LineStyle{Color: t.GridColor, Width: t.GridWidth}
	return g
}

// Raster returns a w by h drawing canvas at the theme's resolution, filled
// with the panel color. Encoding the pixels is the caller's business.
func (t Theme) Raster(w, h vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(t.DPI),
		vgimg.UseBackgroundColor(t.Background),
	)
}
