// Package keyboard models the on-screen Sinhala keyboard as data: the key
// grid, and the per-key faces rebuilt whenever the panel's font size
// changes. Drawing is the UI layer's job.
package keyboard

// KeyKind separates glyph keys from the two action keys.
type KeyKind int

const (
	KeyGlyph KeyKind = iota
	KeySpace
	KeyBackspace
)

// Key is one cell of the grid. Span counts grid columns; glyph keys span 1.
type Key struct {
	Kind  KeyKind
	Glyph rune
	Label string
	Span  int
}

func glyphKey(ch rune) Key {
	return Key{Kind: KeyGlyph, Glyph: ch, Label: string(ch), Span: 1}
}

func glyphRow(chars ...rune) []Key {
	row := make([]Key, 0, len(chars))
	for _, ch := range chars {
		row = append(row, glyphKey(ch))
	}
	return row
}

// Rows returns the keyboard grid: a vowel row, three consonant rows, and a
// final row of remaining letters, dependent signs, Space and Backspace.
func Rows() [][]Key {
	rows := [][]Key{
		glyphRow('අ', 'ආ', 'ඇ', 'ඈ', 'ඉ', 'ඊ', 'උ', 'ඌ', 'එ', 'ඒ', 'ඔ', 'ඕ'),
		glyphRow('ු', 'ූ', 'ෙ', 'ේ', 'ෛ', 'ො', 'ෝ', 'ෞ', 'ක', 'ඛ', 'ග', 'ඝ', 'ඟ', 'ච', 'ඡ'),
		glyphRow('ජ', 'ඣ', 'ඤ', 'ඥ', 'ට', 'ඨ', 'ඩ', 'ඪ', 'ණ', 'ඬ', 'ත', 'ථ', 'ද', 'ධ', 'න'),
		glyphRow('ඳ', 'ප', 'ඵ', 'බ', 'භ', 'ම', 'ඹ', 'ය', 'ර', 'ල', 'ව', 'ශ', 'ෂ', 'ස', 'හ'),
	}
	last := glyphRow('ළ', 'ෆ', 'ං', 'ඃ', '්', 'ා', 'ැ', 'ෑ', 'ි', 'ී')
	last = append(last,
		Key{Kind: KeySpace, Label: "Space", Span: 3},
		Key{Kind: KeyBackspace, Label: "Backspace", Span: 2},
	)
	rows = append(rows, last)
	return rows
}
