package wordmap

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Entry pairs a lowercase Singlish key with the Sinhala word it produces.
type Entry struct {
	Singlish string
	Sinhala  string
}

// DataLoadError reports a missing or malformed dataset. Callers are expected
// to keep running without transliteration when they see one.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load word map %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Map is the Singlish-to-Sinhala dataset. Keys are lowercase; the entry
// slice keeps a fixed scan order (base dataset sorted by key at load time,
// user additions appended) so prefix scans are deterministic.
type Map struct {
	values  map[string]string
	entries []Entry
}

func New(entries []Entry) *Map {
	m := &Map{values: make(map[string]string, len(entries))}
	for _, entry := range entries {
		m.Set(entry.Singlish, entry.Sinhala)
	}
	return m
}

// Load reads a JSON object of singlish->sinhala pairs.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	m := &Map{values: make(map[string]string, len(raw))}
	for _, key := range keys {
		m.Set(key, raw[key])
	}
	return m, nil
}

// Set inserts or replaces a mapping. Keys are lowercased; an existing key
// keeps its scan position.
func (m *Map) Set(singlish, sinhala string) {
	key := strings.ToLower(strings.TrimSpace(singlish))
	value := strings.TrimSpace(sinhala)
	if key == "" || value == "" {
		return
	}
	if _, ok := m.values[key]; ok {
		m.values[key] = value
		for i := range m.entries {
			if m.entries[i].Singlish == key {
				m.entries[i].Sinhala = value
				break
			}
		}
		return
	}
	m.values[key] = value
	m.entries = append(m.entries, Entry{Singlish: key, Sinhala: value})
}

// LookupExact returns the Sinhala word for a token, case-insensitive.
func (m *Map) LookupExact(token string) (string, bool) {
	if m == nil {
		return "", false
	}
	value, ok := m.values[strings.ToLower(token)]
	return value, ok
}

// PrefixMatches returns the distinct Sinhala words whose keys start with
// the given prefix. Order follows the dataset scan order.
func (m *Map) PrefixMatches(prefix string) []string {
	if m == nil || prefix == "" {
		return nil
	}
	prefix = strings.ToLower(prefix)
	var out []string
	seen := make(map[string]struct{})
	for _, entry := range m.entries {
		if !strings.HasPrefix(entry.Singlish, prefix) {
			continue
		}
		if _, dup := seen[entry.Sinhala]; dup {
			continue
		}
		seen[entry.Sinhala] = struct{}{}
		out = append(out, entry.Sinhala)
	}
	return out
}

// Entries exposes the dataset in scan order. The slice is shared; callers
// must not mutate it.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	return m.entries
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}
