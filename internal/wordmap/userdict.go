package wordmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// UserDict holds words the user has added on top of the static dataset.
// It persists as a JSON object next to the preferences file and is merged
// into the Map after every load.
type UserDict struct {
	path  string
	words map[string]string
}

func NewUserDict(path string) *UserDict {
	return &UserDict{path: path, words: make(map[string]string)}
}

// LoadUserDict reads the user dictionary. A missing file is an empty
// dictionary, not an error.
func LoadUserDict(path string) (*UserDict, error) {
	dict := NewUserDict(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return dict, nil
		}
		return nil, &DataLoadError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, &dict.words); err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	return dict, nil
}

// Add records a new pair and persists the dictionary.
func (d *UserDict) Add(singlish, sinhala string) error {
	key := strings.ToLower(strings.TrimSpace(singlish))
	value := strings.TrimSpace(sinhala)
	if key == "" || value == "" {
		return fmt.Errorf("user dict: empty singlish or sinhala word")
	}
	d.words[key] = value
	return d.Save()
}

func (d *UserDict) Save() error {
	if d.path == "" {
		return nil
	}
	if dir := filepath.Dir(d.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("user dict: %w", err)
		}
	}
	data, err := json.MarshalIndent(d.words, "", "  ")
	if err != nil {
		return fmt.Errorf("user dict: %w", err)
	}
	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return fmt.Errorf("user dict: %w", err)
	}
	return nil
}

func (d *UserDict) Len() int { return len(d.words) }

// MergeInto overlays the user words onto a map. User entries win over the
// static dataset; new keys append in sorted order so scans stay stable.
func (d *UserDict) MergeInto(m *Map) {
	keys := make([]string, 0, len(d.words))
	for key := range d.words {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		m.Set(key, d.words[key])
	}
}
