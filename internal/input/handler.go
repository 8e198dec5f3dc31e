// Package input accumulates keystrokes into an in-progress Singlish token
// and decides when to look it up versus commit it to the document.
package input

import (
	"unicode"

	"sinhawp/internal/editor"
	"sinhawp/internal/translit"
)

// KeyKind classifies a keystroke the way the handler cares about it.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
)

// Key is one keystroke event from the editor or the on-screen keyboard.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Handler is a state machine over keystrokes: Empty when the buffer holds
// nothing, Accumulating otherwise. The buffer only ever holds the
// in-progress Latin token; whitespace and punctuation never enter it.
type Handler struct {
	engine *translit.Engine
	sink   editor.Sink

	buffer      []rune
	suggestions []string

	maxSuggestions     int
	enabled            bool
	suggestionsEnabled bool

	onSuggestions func([]string)
}

func NewHandler(engine *translit.Engine, sink editor.Sink) *Handler {
	return &Handler{
		engine:             engine,
		sink:               sink,
		maxSuggestions:     translit.DefaultMaxSuggestions,
		enabled:            true,
		suggestionsEnabled: true,
	}
}

// OnSuggestions registers the callback that surfaces the ranked list.
// It fires with an empty slice when suggestions clear.
func (h *Handler) OnSuggestions(fn func([]string)) { h.onSuggestions = fn }

func (h *Handler) SetMaxSuggestions(n int) {
	if n > 0 {
		h.maxSuggestions = n
	}
}

// SetEnabled turns Singlish input on or off. Disabling flushes nothing:
// the buffer is simply discarded, matching a user switching to raw Latin.
func (h *Handler) SetEnabled(enabled bool) {
	h.enabled = enabled
	if !enabled {
		h.clearBuffer()
	}
}

func (h *Handler) SetSuggestionsEnabled(enabled bool) {
	h.suggestionsEnabled = enabled
	if !enabled {
		h.clearSuggestions()
	}
}

func (h *Handler) Enabled() bool { return h.enabled }

func (h *Handler) Buffer() string { return string(h.buffer) }

func (h *Handler) Suggestions() []string { return h.suggestions }

// SeedFromContext reloads the buffer from the text just before the caret,
// used when the editor regains focus mid-word.
func (h *Handler) SeedFromContext(context string) {
	h.buffer = h.buffer[:0]
	for _, r := range context {
		if isTokenRune(r) {
			h.buffer = append(h.buffer, r)
		}
	}
	if len(h.buffer) > 0 {
		h.updateSuggestions()
	} else {
		h.clearSuggestions()
	}
}

// HandleKey consumes one keystroke. The error comes from the sink; the
// handler itself never fails.
func (h *Handler) HandleKey(key Key) error {
	if !h.enabled {
		return h.passThrough(key)
	}

	switch key.Kind {
	case KeyEnter, KeyTab:
		if len(h.suggestions) > 0 {
			return h.AcceptSuggestion(0)
		}
		if len(h.buffer) > 0 {
			if err := h.commitBuffer(); err != nil {
				return err
			}
		}
		if key.Kind == KeyEnter {
			return h.sink.InsertText("\n")
		}
		return nil
	case KeyEscape:
		h.clearBuffer()
		return nil
	case KeySpace:
		if len(h.buffer) > 0 {
			if err := h.commitBuffer(); err != nil {
				return err
			}
		}
		return h.sink.InsertText(" ")
	case KeyBackspace:
		if len(h.buffer) > 0 {
			h.buffer = h.buffer[:len(h.buffer)-1]
			if len(h.buffer) > 0 {
				h.updateSuggestions()
			} else {
				h.clearSuggestions()
			}
			return nil
		}
		return h.sink.DeleteBackward(1)
	case KeyRune:
		return h.handleRune(key.Rune)
	}
	return nil
}

func (h *Handler) handleRune(r rune) error {
	// Digits double as suggestion hotkeys while a list is showing.
	if r >= '1' && r <= '9' && len(h.suggestions) > 0 {
		index := int(r - '1')
		if index < len(h.suggestions) {
			return h.AcceptSuggestion(index)
		}
	}

	if isTokenRune(r) {
		h.buffer = append(h.buffer, r)
		h.updateSuggestions()
		return nil
	}

	// Punctuation and anything else is a word boundary: commit the token,
	// then insert the boundary character verbatim.
	if len(h.buffer) > 0 {
		if err := h.commitBuffer(); err != nil {
			return err
		}
	}
	return h.sink.InsertText(string(r))
}

// AcceptSuggestion commits the chosen suggestion and clears the buffer.
func (h *Handler) AcceptSuggestion(index int) error {
	if index < 0 || index >= len(h.suggestions) {
		return nil
	}
	chosen := h.suggestions[index]
	h.clearBuffer()
	return h.sink.InsertText(chosen)
}

// Commit flushes the buffer through transliteration, e.g. on focus loss.
func (h *Handler) Commit() error {
	if len(h.buffer) == 0 {
		return nil
	}
	return h.commitBuffer()
}

func (h *Handler) commitBuffer() error {
	text := h.engine.Transliterate(string(h.buffer))
	h.clearBuffer()
	return h.sink.InsertText(text)
}

func (h *Handler) passThrough(key Key) error {
	switch key.Kind {
	case KeyRune:
		return h.sink.InsertText(string(key.Rune))
	case KeySpace:
		return h.sink.InsertText(" ")
	case KeyEnter:
		return h.sink.InsertText("\n")
	case KeyBackspace:
		return h.sink.DeleteBackward(1)
	}
	return nil
}

func (h *Handler) updateSuggestions() {
	if !h.suggestionsEnabled {
		return
	}
	h.suggestions = h.engine.Suggestions(string(h.buffer), h.maxSuggestions)
	h.publish()
}

func (h *Handler) clearBuffer() {
	h.buffer = h.buffer[:0]
	h.clearSuggestions()
}

func (h *Handler) clearSuggestions() {
	if h.suggestions != nil {
		h.suggestions = nil
		h.publish()
	}
}

func (h *Handler) publish() {
	if h.onSuggestions != nil {
		h.onSuggestions(h.suggestions)
	}
}

func isTokenRune(r rune) bool {
	return r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
