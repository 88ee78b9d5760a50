package tracer

import (
	"math"

	"fortio.org/safecast"
)

// Palette is an ordered glyph gradient, darkest first.
type Palette []rune

// DefaultPalette starts with a figure space so empty cells keep the width
// of a digit.
var DefaultPalette = Palette("\u2007.:!/r(l1Z4H9W8$@")

// Index clamps lum to [0, len-1] and truncates it. NaN maps to 0.
func (p Palette) Index(lum float64) int {
	top := float64(len(p) - 1)
	if len(p) == 0 || math.IsNaN(lum) || lum <= 0 {
		return 0
	}
	idx, err := safecast.Convert[int](math.Floor(math.Min(lum, top)))
	if err != nil {
		return 0
	}
	return idx
}

// Glyph quantizes lum to a glyph. An empty palette yields a space.
func (p Palette) Glyph(lum float64) rune {
	if len(p) == 0 {
		return ' '
	}
	return p[p.Index(lum)]
}
