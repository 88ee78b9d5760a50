package tracer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteBounds(t *testing.T) {
	p := DefaultPalette
	first, last := p[0], p[len(p)-1]
	assert.Len(t, p, 17)
	assert.Equal(t, '\u2007', first)
	assert.Equal(t, '@', last)

	tests := []struct {
		lum  float64
		want rune
	}{
		{0, first},
		{-3, first},
		{math.Inf(-1), first},
		{math.NaN(), first},
		{0.999, first},
		{1, '.'},
		{1.99, '.'},
		{2.5, ':'},
		{15.99, '$'},
		{16, last},
		{1000, last},
		{math.Inf(1), last},
	}
	for _, tc := range tests {
		assert.Equal(t, string(tc.want), string(p.Glyph(tc.lum)), "lum %v", tc.lum)
	}
}

func TestPaletteMonotonic(t *testing.T) {
	prev := 0
	for lum := -1.0; lum < 20; lum += 0.05 {
		idx := DefaultPalette.Index(lum)
		assert.GreaterOrEqual(t, idx, prev, "lum %v", lum)
		assert.Less(t, idx, len(DefaultPalette))
		prev = idx
	}
	assert.Equal(t, len(DefaultPalette)-1, prev)
}

func TestEmptyPalette(t *testing.T) {
	var p Palette
	assert.Equal(t, 0, p.Index(5))
	assert.Equal(t, ' ', p.Glyph(5))
	assert.Equal(t, 'x', Palette("x").Glyph(99))
}
