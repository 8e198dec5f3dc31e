// Package translit maps Singlish tokens to Sinhala words and ranks
// prefix completions. Absent matches are normal results, never errors:
// free-form typing misses the dataset constantly.
package translit

import (
	"sort"
	"strings"
	"unicode/utf8"

	"sinhawp/internal/wordmap"
)

// DefaultMaxSuggestions caps a suggestion list when callers pass no limit.
const DefaultMaxSuggestions = 9

type Engine struct {
	words *wordmap.Map
}

func New(words *wordmap.Map) *Engine {
	return &Engine{words: words}
}

// Transliterate returns the Sinhala word for an exact (case-insensitive)
// match, or the input unchanged. It never fails; unknown input passes
// through so nothing the user typed is ever dropped.
func (e *Engine) Transliterate(token string) string {
	if e == nil || e.words == nil {
		return token
	}
	if value, ok := e.words.LookupExact(token); ok {
		return value
	}
	return token
}

// Suggestions returns up to max Sinhala completions for a prefix. An exact
// match is always rank 0; the rest sort by ascending length, shortest
// first. The scan walks the dataset in its fixed order and stops after
// collecting twice the requested count, which leaves headroom for the
// length sort without walking the whole map on short prefixes. Ties in
// length keep their scan order (stable sort).
func (e *Engine) Suggestions(prefix string, max int) []string {
	if e == nil || e.words == nil || max <= 0 {
		return nil
	}
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil
	}

	exact, hasExact := e.words.LookupExact(prefix)

	seen := make(map[string]struct{})
	if hasExact {
		seen[exact] = struct{}{}
	}

	var rest []string
	budget := max * 2
	for _, entry := range e.words.Entries() {
		if len(rest) >= budget {
			break
		}
		if !strings.HasPrefix(entry.Singlish, prefix) {
			continue
		}
		if _, dup := seen[entry.Sinhala]; dup {
			continue
		}
		seen[entry.Sinhala] = struct{}{}
		rest = append(rest, entry.Sinhala)
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return utf8.RuneCountInString(rest[i]) < utf8.RuneCountInString(rest[j])
	})

	var out []string
	if hasExact {
		out = append(out, exact)
	}
	out = append(out, rest...)
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// SinglishFor reverse-maps a Sinhala word to a Singlish key. Several keys
// may produce the same word; the shortest one is the canonical answer,
// ties broken by dataset order.
func (e *Engine) SinglishFor(sinhala string) (string, bool) {
	if e == nil || e.words == nil || sinhala == "" {
		return "", false
	}
	best := ""
	found := false
	for _, entry := range e.words.Entries() {
		if entry.Sinhala != sinhala {
			continue
		}
		if !found || len(entry.Singlish) < len(best) {
			best = entry.Singlish
			found = true
		}
	}
	return best, found
}
