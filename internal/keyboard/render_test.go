package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// partialFace covers every glyph except those listed as missing.
type partialFace struct {
	name    string
	missing map[rune]bool
}

func (f partialFace) Family() string        { return f.name }
func (f partialFace) HasGlyph(ch rune) bool { return !f.missing[ch] }

func TestRowsShape(t *testing.T) {
	rows := Rows()
	require.Len(t, rows, 5)

	last := rows[len(rows)-1]
	require.GreaterOrEqual(t, len(last), 2)
	space := last[len(last)-2]
	backspace := last[len(last)-1]
	assert.Equal(t, KeySpace, space.Kind)
	assert.Equal(t, 3, space.Span)
	assert.Equal(t, KeyBackspace, backspace.Kind)
	assert.Equal(t, 2, backspace.Span)

	for i, row := range rows {
		for j, key := range row {
			if key.Kind != KeyGlyph {
				continue
			}
			assert.Equal(t, 1, key.Span, "glyph key at %d,%d", i, j)
			assert.Equal(t, string(key.Glyph), key.Label)
		}
	}
}

func TestRenderSizes(t *testing.T) {
	r := NewRenderer(partialFace{name: "Iskoola Pota"}, nil, nil)
	faces := r.Render(Rows(), 40)

	require.NotEmpty(t, faces)
	face := faces[0][0]
	assert.Equal(t, 60, face.ButtonSize, "button is font size plus padding")
	assert.Equal(t, 36, face.PointSize, "label is font size minus inset")
}

func TestRenderFloorsSmallSizes(t *testing.T) {
	r := NewRenderer(partialFace{name: "Iskoola Pota"}, nil, nil)
	faces := r.Render(Rows(), 10)

	face := faces[0][0]
	assert.Equal(t, MinTouchTarget, face.ButtonSize)
	assert.Equal(t, 12, face.PointSize)
}

func TestRenderFallbackPerKey(t *testing.T) {
	primary := partialFace{name: "Iskoola Pota", missing: map[rune]bool{'ඬ': true}}
	r := NewRenderer(primary, GenericFace{Name: "sans-serif"}, nil)
	faces := r.Render(Rows(), 26)

	fellBack := 0
	for _, row := range faces {
		for _, face := range row {
			switch {
			case face.Key.Kind != KeyGlyph:
				assert.Equal(t, "sans-serif", face.Family, "action keys use the fallback face")
			case face.Key.Glyph == 'ඬ':
				assert.Equal(t, "sans-serif", face.Family)
				fellBack++
			default:
				assert.Equal(t, "Iskoola Pota", face.Family)
			}
		}
	}
	assert.Equal(t, 1, fellBack, "exactly one glyph key fell back")
}

func TestRenderNilPrimary(t *testing.T) {
	r := NewRenderer(nil, nil, nil)
	faces := r.Render(Rows(), 26)
	assert.Equal(t, "sans-serif", faces[0][0].Family)
}
