package palette

// Marker is a single-rune marker code for series points. The rune doubles
// as the glyph in terminal previews; chart backends map it to a shape.
type Marker rune

const (
	// MarkerStar is a five-pointed star.
	MarkerStar Marker = '*'
	// MarkerCross is a diagonal cross.
	MarkerCross Marker = 'x'
	// MarkerCircle is a filled circle.
	MarkerCircle Marker = 'o'
)

// Rune returns the marker's display rune.
func (m Marker) Rune() rune {
	return rune(m)
}
