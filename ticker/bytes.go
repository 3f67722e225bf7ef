// Package ticker labels plot axes whose values are raw byte counts.
package ticker

import (
	"fmt"

	"gonum.org/v1/plot"
)

// Binary unit steps.
const (
	KiB = 1 << 10
	MiB = 1 << 20
)

// Bytes renders a byte count with binary units and no decimals: "512B",
// "2KiB", "5MiB". Rounding is round-half-to-even. Everything at or above
// one MiB stays in MiB; the filter tables the pipeline measures never
// reach GiB.
func Bytes(v float64) string {
	switch {
	case v < KiB:
		return fmt.Sprintf("%.0fB", v)
	case v < MiB:
		return fmt.Sprintf("%.0fKiB", v/KiB)
	default:
		return fmt.Sprintf("%.0fMiB", v/MiB)
	}
}

// ByteTicks is a plot.Ticker that labels tick positions as byte counts.
//
// Positions come from Base. Major ticks get their labels rewritten with
// Bytes; minor ticks (empty label in gonum's tick model) stay unlabeled
// unless Minor is set, in which case they are labeled the same way.
type ByteTicks struct {
	// Minor labels minor ticks too.
	Minor bool
	// Base supplies tick positions. Nil means plot.DefaultTicks.
	Base plot.Ticker
}

// Ticks implements plot.Ticker. The base ticker's slice is not modified.
func (bt ByteTicks) Ticks(min, max float64) []plot.Tick {
	base := bt.Base
	if base == nil {
		base = plot.DefaultTicks{}
	}
	ticks := append([]plot.Tick(nil), base.Ticks(min, max)...)
	for i, tk := range ticks {
		if tk.Label == "" && !bt.Minor {
			continue
		}
		ticks[i].Label = Bytes(tk.Value)
	}
	return ticks
}

// SetupBytes installs byte-count labels on ax. With minor set, minor ticks
// are labeled as well; otherwise they keep their marks but no text.
func SetupBytes(ax *plot.Axis, minor bool) {
	ax.Tick.Marker = ByteTicks{Minor: minor}
}
