package cli

import (
	"fmt"
	"strconv"
	"strings"
)

type Options struct {
	ShowHelp       bool
	WordMapPath    string
	UserDictPath   string
	PrefsPath      string
	LogPath        string
	MaxSuggestions int
	NoSuggestions  bool
	NoSinglish     bool
}

func Parse(args []string) (Options, error) {
	opts := Options{MaxSuggestions: 9}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
		case strings.HasPrefix(arg, "--wordmap"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.WordMapPath = value
			i = next
		case strings.HasPrefix(arg, "--userdict"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.UserDictPath = value
			i = next
		case strings.HasPrefix(arg, "--prefs"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.PrefsPath = value
			i = next
		case strings.HasPrefix(arg, "--log"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.LogPath = value
			i = next
		case strings.HasPrefix(arg, "--max-suggestions"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return Options{}, fmt.Errorf("invalid --max-suggestions value %q", value)
			}
			opts.MaxSuggestions = n
			i = next
		case arg == "--no-suggestions":
			opts.NoSuggestions = true
		case arg == "--no-singlish":
			opts.NoSinglish = true
		default:
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		}
	}
	return opts, nil
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

func Usage() string {
	return `sinhawp - Singlish to Sinhala word processor (terminal session)
Usage: sinhawp [--wordmap sinhalawordmap.json] [options]

Options:
  --wordmap PATH          Path to the Singlish word map JSON (default: ./sinhalawordmap.json)
  --userdict PATH         Path to the user dictionary JSON (default: config dir)
  --prefs PATH            Path to the preferences ini (default: config dir)
  --log PATH              Write logs to PATH instead of discarding
  --max-suggestions N     Suggestion list size (default: 9)
  --no-suggestions        Disable the suggestion list
  --no-singlish           Start with Singlish input disabled (raw Latin typing)
  -h, --help              Show this help message`
}
