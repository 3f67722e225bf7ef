package palette

import (
	"fmt"
	"image/color"
)

// Category identifies the modulus class of a position filter. The set is
// closed: every filter the pipeline produces belongs to exactly one class,
// and each class keeps its color and marker across all charts.
type Category uint8

const (
	// Prime marks filters built on a prime modulus.
	Prime Category = iota
	// Round marks filters built on a power-of-two modulus.
	Round
	// RoundMinusOne marks filters built on a modulus one below a power of two.
	RoundMinusOne

	numCategories
)

// categoryHues is the shared six-hue wheel the category colors come from.
var categoryHues = Hues(6)

// Wheel slots per category. The assignment is arbitrary but stable: charts
// rendered years apart must keep matching series colors.
const (
	primeHue         = 3
	roundHue         = 0
	roundMinusOneHue = 2
)

// String returns the label used for the category in result files and
// command-line flags.
func (c Category) String() string {
	switch c {
	case Prime:
		return "prime"
	case Round:
		return "round"
	case RoundMinusOne:
		return "round_minus_one"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ParseCategory maps a result-file label to its Category. Labels outside
// the closed set are an error.
func ParseCategory(label string) (Category, error) {
	switch label {
	case "prime":
		return Prime, nil
	case "round":
		return Round, nil
	case "round_minus_one":
		return RoundMinusOne, nil
	}
	return 0, fmt.Errorf("unknown filter category %q", label)
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	cats := make([]Category, numCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// Color returns the category's fixed chart color.
func (c Category) Color() color.Color {
	switch c {
	case Prime:
		return categoryHues[primeHue]
	case Round:
		return categoryHues[roundHue]
	case RoundMinusOne:
		return categoryHues[roundMinusOneHue]
	}
	panic(fmt.Sprintf("palette: no color for %v", c))
}

// Marker returns the category's fixed marker code.
func (c Category) Marker() Marker {
	switch c {
	case Prime:
		return MarkerStar
	case Round:
		return MarkerCross
	case RoundMinusOne:
		return MarkerCircle
	}
	panic(fmt.Sprintf("palette: no marker for %v", c))
}
