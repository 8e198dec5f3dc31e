package resize

import "math"

// Metrics defines the deterministic height<->font mapping for the keyboard
// panel. Font size scales linearly with panel height around a base pair;
// HeightForFont is the canonical direction, and FontForHeight recovers the
// font whose height is nearest the given height. For any height that some
// valid font maps to, the round trip is exact:
//
//	HeightForFont(FontForHeight(h)) == h
type Metrics struct {
	BaseHeight int
	BaseFont   int
	MinFont    int
	MaxFont    int
}

// DefaultMetrics matches the shipped keyboard panel: 264px tall at 26pt,
// fonts clamped to [26, 200].
func DefaultMetrics() Metrics {
	return Metrics{BaseHeight: 264, BaseFont: 26, MinFont: 26, MaxFont: 200}
}

// ClampFont forces a font size into [MinFont, MaxFont].
func (m Metrics) ClampFont(font int) int {
	if font < m.MinFont {
		return m.MinFont
	}
	if font > m.MaxFont {
		return m.MaxFont
	}
	return font
}

// HeightForFont maps a font size to its exact panel height.
func (m Metrics) HeightForFont(font int) int {
	font = m.ClampFont(font)
	return int(math.Round(float64(m.BaseHeight) * float64(font) / float64(m.BaseFont)))
}

// FontForHeight maps a panel height to the nearest valid font size.
func (m Metrics) FontForHeight(height int) int {
	font := int(math.Round(float64(m.BaseFont) * float64(height) / float64(m.BaseHeight)))
	return m.ClampFont(font)
}

// MinHeight is the height of the smallest valid font.
func (m Metrics) MinHeight() int { return m.HeightForFont(m.MinFont) }

// MaxHeight is the height of the largest valid font.
func (m Metrics) MaxHeight() int { return m.HeightForFont(m.MaxFont) }
