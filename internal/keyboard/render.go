package keyboard

import (
	"io"
	"log/slog"
)

// Keys stay tappable at the smallest font: the button never shrinks below
// this square, whatever the font size says.
const MinTouchTarget = 46

// minLabelSize keeps labels legible when the panel is dragged small.
const minLabelSize = 12

// FontFace answers glyph-coverage questions for one font family. The UI
// layer backs this with the platform's font machinery.
type FontFace interface {
	Family() string
	HasGlyph(ch rune) bool
}

// GenericFace is the always-available fallback. It claims every glyph;
// the platform substitutes whatever it can draw.
type GenericFace struct{ Name string }

func (f GenericFace) Family() string { return f.Name }

func (f GenericFace) HasGlyph(rune) bool { return true }

// KeyFace is the render recipe for one visible key at the current size.
type KeyFace struct {
	Key        Key
	Family     string
	PointSize  int
	ButtonSize int
}

// Renderer rebuilds key faces at a given font size. A glyph missing from
// the primary face falls back to the generic face for that key only; the
// rest of the grid renders with the configured family.
type Renderer struct {
	primary  FontFace
	fallback FontFace
	logger   *slog.Logger
}

func NewRenderer(primary FontFace, fallback FontFace, logger *slog.Logger) *Renderer {
	if fallback == nil {
		fallback = GenericFace{Name: "sans-serif"}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Renderer{primary: primary, fallback: fallback, logger: logger}
}

// Render produces the face for every key in the grid at fontSize.
func (r *Renderer) Render(rows [][]Key, fontSize int) [][]KeyFace {
	buttonSize := fontSize + 20
	if buttonSize < MinTouchTarget {
		buttonSize = MinTouchTarget
	}
	labelSize := fontSize - 4
	if labelSize < minLabelSize {
		labelSize = minLabelSize
	}

	faces := make([][]KeyFace, len(rows))
	for i, row := range rows {
		faces[i] = make([]KeyFace, len(row))
		for j, key := range row {
			faces[i][j] = KeyFace{
				Key:        key,
				Family:     r.familyFor(key),
				PointSize:  labelSize,
				ButtonSize: buttonSize,
			}
		}
	}
	return faces
}

func (r *Renderer) familyFor(key Key) string {
	if key.Kind != KeyGlyph || r.primary == nil {
		return r.fallback.Family()
	}
	if !r.primary.HasGlyph(key.Glyph) {
		r.logger.Debug("glyph missing from font, using fallback",
			"glyph", key.Label, "family", r.primary.Family())
		return r.fallback.Family()
	}
	return r.primary.Family()
}
