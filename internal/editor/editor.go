// Package editor defines the boundary to the document: the input pipeline
// only ever inserts literal text or deletes backward at the caret. A real
// rich-text widget sits behind this interface in the application; Document
// is the in-memory implementation the terminal frontends and tests use.
package editor

import "unicode"

// Sink receives committed text from the transliteration pipeline.
type Sink interface {
	InsertText(text string) error
	DeleteBackward(count int) error
}

// Document is a rune buffer with a caret.
type Document struct {
	runes []rune
	caret int
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) InsertText(text string) error {
	if text == "" {
		return nil
	}
	insert := []rune(text)
	d.runes = append(d.runes[:d.caret], append(insert, d.runes[d.caret:]...)...)
	d.caret += len(insert)
	return nil
}

func (d *Document) DeleteBackward(count int) error {
	if count <= 0 {
		return nil
	}
	if count > d.caret {
		count = d.caret
	}
	d.runes = append(d.runes[:d.caret-count], d.runes[d.caret:]...)
	d.caret -= count
	return nil
}

func (d *Document) String() string { return string(d.runes) }

func (d *Document) Len() int { return len(d.runes) }

func (d *Document) Caret() int { return d.caret }

// SetCaret clamps the caret into the document.
func (d *Document) SetCaret(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(d.runes) {
		pos = len(d.runes)
	}
	d.caret = pos
}

// CaretContext returns the run of Latin letters and digits immediately
// before the caret. The input handler uses it to reseed its buffer when
// the editor regains focus mid-word.
func (d *Document) CaretContext() string {
	start := d.caret
	for start > 0 {
		r := d.runes[start-1]
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			break
		}
		start--
	}
	return string(d.runes[start:d.caret])
}

// Tail returns up to n runes before the caret, for status-line display.
func (d *Document) Tail(n int) string {
	if n <= 0 || d.caret == 0 {
		return ""
	}
	start := d.caret - n
	if start < 0 {
		start = 0
	}
	return string(d.runes[start:d.caret])
}
