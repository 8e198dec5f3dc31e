// Package spell flags Sinhala words that the word map does not know.
// Latin text is never flagged; only runs of Sinhala-block characters are
// checked against the known-word set.
package spell

import "sinhawp/internal/wordmap"

// Sinhala Unicode block.
const (
	blockStart = 0x0D80
	blockEnd   = 0x0DFF
)

// Span is a byte range of a misspelled word inside the checked text.
type Span struct {
	Start int
	End   int
	Word  string
}

// Checker holds the known Sinhala vocabulary.
type Checker struct {
	known map[string]struct{}
}

// New builds a checker from the word map's Sinhala values; user additions
// go in through AddWord.
func New(words *wordmap.Map) *Checker {
	c := &Checker{known: make(map[string]struct{}, words.Len())}
	for _, entry := range words.Entries() {
		c.known[entry.Sinhala] = struct{}{}
	}
	return c
}

func (c *Checker) AddWord(sinhala string) {
	if sinhala != "" {
		c.known[sinhala] = struct{}{}
	}
}

func (c *Checker) IsKnown(word string) bool {
	_, ok := c.known[word]
	return ok
}

// IsSinhala reports whether the word contains any Sinhala character.
func IsSinhala(word string) bool {
	for _, r := range word {
		if inBlock(r) {
			return true
		}
	}
	return false
}

// CheckText scans the text for Sinhala words and returns the spans of the
// unknown ones, in order.
func (c *Checker) CheckText(text string) []Span {
	var spans []Span
	start := -1
	for i, r := range text {
		if inBlock(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			spans = c.appendIfUnknown(spans, text, start, i)
			start = -1
		}
	}
	if start >= 0 {
		spans = c.appendIfUnknown(spans, text, start, len(text))
	}
	return spans
}

func (c *Checker) appendIfUnknown(spans []Span, text string, start, end int) []Span {
	word := text[start:end]
	if c.IsKnown(word) {
		return spans
	}
	return append(spans, Span{Start: start, End: end, Word: word})
}

func inBlock(r rune) bool {
	return r >= blockStart && r <= blockEnd
}
