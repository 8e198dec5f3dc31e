package resize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMetricsAnchors(t *testing.T) {
	m := DefaultMetrics()
	assert.Equal(t, 264, m.HeightForFont(26))
	assert.Equal(t, 26, m.FontForHeight(264))
	assert.Equal(t, 264, m.MinHeight())
	assert.Equal(t, m.HeightForFont(200), m.MaxHeight())
}

func TestClampFont(t *testing.T) {
	m := DefaultMetrics()
	assert.Equal(t, 26, m.ClampFont(1))
	assert.Equal(t, 26, m.ClampFont(26))
	assert.Equal(t, 120, m.ClampFont(120))
	assert.Equal(t, 200, m.ClampFont(999))
}

func TestRoundTripExactForReachableHeights(t *testing.T) {
	m := DefaultMetrics()
	for font := m.MinFont; font <= m.MaxFont; font++ {
		h := m.HeightForFont(font)
		back := m.FontForHeight(h)
		assert.Equal(t, font, back, "font %d -> height %d", font, h)
		assert.Equal(t, h, m.HeightForFont(back))
	}
}

func TestFontForHeightClampsBelowAndAbove(t *testing.T) {
	m := DefaultMetrics()
	assert.Equal(t, m.MinFont, m.FontForHeight(0))
	assert.Equal(t, m.MinFont, m.FontForHeight(100))
	assert.Equal(t, m.MaxFont, m.FontForHeight(100000))
}

func TestFontForHeightNearest(t *testing.T) {
	m := DefaultMetrics()
	// One px either side of an exact height still recovers the same font.
	h := m.HeightForFont(50)
	assert.Equal(t, 50, m.FontForHeight(h-1))
	assert.Equal(t, 50, m.FontForHeight(h+1))
}
