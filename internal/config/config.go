// Package config loads application settings and user preferences from an
// ini file and persists the preferences the UI changes at runtime, the
// keyboard font size among them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	ini "github.com/go-ini/ini"
)

const (
	defaultTheme    = "light"
	defaultFont     = "Iskoola Pota"
	defaultFontSize = 14
)

// Preferences is everything the word processor remembers between runs.
// KeyboardFontSize of 0 means the user never resized the keyboard and the
// panel follows automatic layout.
type Preferences struct {
	Theme            string
	Font             string
	FontSize         int
	KeyboardFontSize int
	ShowKeyboard     bool
	SinglishEnabled  bool
	ShowSuggestions  bool
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:            defaultTheme,
		Font:             defaultFont,
		FontSize:         defaultFontSize,
		KeyboardFontSize: 0,
		ShowKeyboard:     true,
		SinglishEnabled:  true,
		ShowSuggestions:  true,
	}
}

// Load reads preferences from path. A missing file yields the defaults.
func Load(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	if path == "" {
		return prefs, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return prefs, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return prefs, fmt.Errorf("config: %w", err)
	}

	editor := file.Section("editor")
	prefs.Theme = editor.Key("theme").MustString(prefs.Theme)
	prefs.Font = editor.Key("font").MustString(prefs.Font)
	prefs.FontSize = parseInt(editor.Key("font_size").String(), prefs.FontSize)

	kb := file.Section("keyboard")
	prefs.KeyboardFontSize = parseInt(kb.Key("font_size").String(), prefs.KeyboardFontSize)
	prefs.ShowKeyboard = parseBool(kb.Key("visible").String(), prefs.ShowKeyboard)

	in := file.Section("input")
	prefs.SinglishEnabled = parseBool(in.Key("singlish").String(), prefs.SinglishEnabled)
	prefs.ShowSuggestions = parseBool(in.Key("suggestions").String(), prefs.ShowSuggestions)

	return prefs, nil
}

// Save writes the preferences back as ini text.
func Save(path string, prefs Preferences) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	content := fmt.Sprintf(`[editor]
theme = %s
font = %s
font_size = %d

[keyboard]
font_size = %d
visible = %t

[input]
singlish = %t
suggestions = %t
`,
		prefs.Theme, prefs.Font, prefs.FontSize,
		prefs.KeyboardFontSize, prefs.ShowKeyboard,
		prefs.SinglishEnabled, prefs.ShowSuggestions)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DefaultDir resolves where preferences and the user dictionary live.
func DefaultDir() string {
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		return filepath.Join(configDir, "sinhawp")
	}
	return filepath.Join(os.TempDir(), "sinhawp")
}

// DefaultPath is the default preferences file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "preferences.ini")
}

// DefaultUserDictPath is the default user dictionary location.
func DefaultUserDictPath() string {
	return filepath.Join(DefaultDir(), "userdict.json")
}

func parseInt(value string, def int) int {
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

func parseBool(value string, def bool) bool {
	if value == "" {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return b
}
