package style

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/pegsolve/evalplot/palette"
)

// Glyph maps a marker code to its drawable shape.
func Glyph(m palette.Marker) draw.GlyphDrawer {
	switch m {
	case palette.MarkerStar:
		return StarGlyph{}
	case palette.MarkerCross:
		return draw.CrossGlyph{}
	case palette.MarkerCircle:
		return draw.CircleGlyph{}
	}
	panic(fmt.Sprintf("style: no glyph for marker %q", m.Rune()))
}

// StarGlyph is a filled five-pointed star. The plotting library ships
// crosses and circles but no star, so the prime series draws this one.
type StarGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (StarGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	const points = 5
	// Inner radius of a pentagram relative to its outer radius.
	inner := sty.Radius * 0.382

	var p vg.Path
	for i := 0; i < 2*points; i++ {
		r := sty.Radius
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi/2 + float64(i)*math.Pi/points
		v := vg.Point{
			X: pt.X + r*vg.Length(math.Cos(a)),
			Y: pt.Y + r*vg.Length(math.Sin(a)),
		}
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
	}
	p.Close()
	c.SetColor(sty.Color)
	c.Fill(p)
}
