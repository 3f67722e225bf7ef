package style

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plainTheme is a TeX-free counterpart of GGPlot for exercising the other
// text handler branch.
func plainTheme() Theme {
	return Theme{
		Name:       "plain",
		DPI:        96,
		Background: color.White,
		GridColor:  color.Gray{Y: 0xcc},
		GridWidth:  vg.Points(0.5),
		Text:       color.Black,
		Font: font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
			Size:     vg.Points(10),
		},
	}
}

func TestGGPlot(t *testing.T) {
	th := GGPlot()
	if th.Name != "ggplot" {
		t.Errorf("Name = %q, want %q", th.Name, "ggplot")
	}
	if th.DPI != 300 {
		t.Errorf("DPI = %d, want 300", th.DPI)
	}
	if !th.TeX {
		t.Error("TeX = false, want true")
	}
	if th.Font.Variant != "Serif" {
		t.Errorf("Font.Variant = %q, want %q", th.Font.Variant, "Serif")
	}
	if th.Background == nil || th.GridColor == nil || th.Text == nil {
		t.Error("theme has nil colors")
	}
}

// assertThemed checks the plot fields Apply is responsible for.
func assertThemed(t *testing.T, p *plot.Plot, th Theme) {
	t.Helper()

	if p.BackgroundColor != th.Background {
		t.Errorf("BackgroundColor = %v, want %v", p.BackgroundColor, th.Background)
	}
	if p.Title.TextStyle.Color != th.Text {
		t.Errorf("title color = %v, want %v", p.Title.TextStyle.Color, th.Text)
	}
	if got, want := p.Title.TextStyle.Font.Size, th.Font.Size*1.2; got != want {
		t.Errorf("title font size = %v, want %v", got, want)
	}
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		if ax.Label.TextStyle.Color != th.Text {
			t.Errorf("axis label color = %v, want %v", ax.Label.TextStyle.Color, th.Text)
		}
		if ax.LineStyle.Color != th.Background {
			t.Errorf("axis line color = %v, want %v", ax.LineStyle.Color, th.Background)
		}
		if got, want := ax.Tick.Label.Font.Size, th.Font.Size*0.85; got != want {
			t.Errorf("tick font size = %v, want %v", got, want)
		}
	}
	if th.TeX {
		h, ok := p.X.Tick.Label.Handler.(*text.Latex)
		if !ok {
			t.Fatalf("tick handler is %T, want *text.Latex", p.X.Tick.Label.Handler)
		}
		if h.DPI != float64(th.DPI) {
			t.Errorf("TeX handler DPI = %v, want %v", h.DPI, th.DPI)
		}
	} else {
		if _, ok := p.X.Tick.Label.Handler.(*text.Latex); ok {
			t.Error("tick handler is TeX for a non-TeX theme")
		}
	}
}

func TestApply(t *testing.T) {
	th := GGPlot()
	p := plot.New()
	th.Apply(p)
	assertThemed(t, p, th)
}

func TestApplyIdempotent(t *testing.T) {
	th := GGPlot()
	p := plot.New()
	th.Apply(p)
	th.Apply(p)
	assertThemed(t, p, th)
}

func TestApplyLastThemeWins(t *testing.T) {
	plain := plainTheme()

	p := plot.New()
	GGPlot().Apply(p)
	plain.Apply(p)
	assertThemed(t, p, plain)
}

func TestNew(t *testing.T) {
	th := GGPlot()
	p := New(th)
	assertThemed(t, p, th)
}

func TestGrid(t *testing.T) {
	th := GGPlot()
	g := th.Grid()
	if g.Vertical.Color != th.GridColor || g.Horizontal.Color != th.GridColor {
		t.Errorf("grid colors = %v, %v, want %v", g.Vertical.Color, g.Horizontal.Color, th.GridColor)
	}
	if g.Vertical.Width != th.GridWidth || g.Horizontal.Width != th.GridWidth {
		t.Errorf("grid widths = %v, %v, want %v", g.Vertical.Width, g.Horizontal.Width, th.GridWidth)
	}
}

func TestRasterResolution(t *testing.T) {
	th := GGPlot()
	c := th.Raster(4*vg.Inch, 2*vg.Inch)

	bounds := c.Image().Bounds()
	if bounds.Dx() != 4*th.DPI || bounds.Dy() != 2*th.DPI {
		t.Errorf("raster is %dx%d px, want %dx%d", bounds.Dx(), bounds.Dy(), 4*th.DPI, 2*th.DPI)
	}
}

func TestThemedPlotDraws(t *testing.T) {
	tests := []struct {
		name string
		th   Theme
	}{
		{"tex", GGPlot()},
		{"plain", plainTheme()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.th)
			p.Title.Text = "sizes"
			p.X.Label.Text = "pegs"
			p.Y.Label.Text = "bytes"

			c := tt.th.Raster(2*vg.Inch, 2*vg.Inch)
			p.Draw(draw.New(c))

			// Titles, tick labels, and the grid must leave ink somewhere
			// on the panel.
			img := c.Image()
			bgR, bgG, bgB, _ := tt.th.Background.RGBA()
			b := img.Bounds()
			inked := false
			for y := b.Min.Y; y < b.Max.Y && !inked; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					r, g, bl, _ := img.At(x, y).RGBA()
					if r != bgR || g != bgG || bl != bgB {
						inked = true
						break
					}
				}
			}
			if !inked {
				t.Error("drawn plot left every pixel at the background color")
			}
		})
	}
}
