// sinhawp runs the Singlish word processor core as a terminal session:
// keystrokes accumulate into a token, the suggestion list tracks it, and
// boundaries or hotkeys commit Sinhala text into the document line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	kb "github.com/eiannone/keyboard"

	"sinhawp/internal/cli"
	"sinhawp/internal/config"
	"sinhawp/internal/editor"
	"sinhawp/internal/input"
	"sinhawp/internal/translit"
	"sinhawp/internal/wordmap"
)

func main() {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sinhawp: %v\n", err)
		os.Exit(1)
	}
	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "sinhawp: %v\n", err)
		os.Exit(1)
	}
}

func run(opts cli.Options) error {
	logger, closeLog, err := openLogger(opts.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.PrefsPath == "" {
		opts.PrefsPath = config.DefaultPath()
	}
	if opts.UserDictPath == "" {
		opts.UserDictPath = config.DefaultUserDictPath()
	}
	if opts.WordMapPath == "" {
		opts.WordMapPath = "sinhalawordmap.json"
	}

	prefs, err := config.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("preferences unreadable, using defaults", "error", err)
		prefs = config.DefaultPreferences()
	}

	// A broken dataset degrades to pass-through typing; it must not take
	// the editor down with it.
	words, err := wordmap.Load(opts.WordMapPath)
	if err != nil {
		logger.Error("word map unavailable, transliteration disabled", "error", err)
		words = wordmap.New(nil)
	}
	userDict, err := wordmap.LoadUserDict(opts.UserDictPath)
	if err != nil {
		logger.Warn("user dictionary unreadable", "error", err)
		userDict = wordmap.NewUserDict(opts.UserDictPath)
	}
	userDict.MergeInto(words)

	watcher, err := wordmap.Watch(opts.UserDictPath, logger)
	if err != nil {
		logger.Warn("user dictionary watcher unavailable", "error", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	engine := translit.New(words)
	doc := editor.NewDocument()
	handler := input.NewHandler(engine, doc)
	handler.SetMaxSuggestions(opts.MaxSuggestions)
	handler.SetSuggestionsEnabled(prefs.ShowSuggestions && !opts.NoSuggestions)
	handler.SetEnabled(prefs.SinglishEnabled && !opts.NoSinglish)

	var suggestions []string
	handler.OnSuggestions(func(items []string) { suggestions = items })

	if err := kb.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer kb.Close()

	fmt.Println("sinhawp — type Singlish; space commits, 1-9 pick a suggestion, Esc clears, Ctrl+C quits")
	redraw(doc, handler, suggestions)

	for {
		if watcher != nil {
			select {
			case dict := <-watcher.Updates():
				dict.MergeInto(words)
				logger.Info("user dictionary reloaded", "words", dict.Len())
			default:
			}
		}

		ch, key, err := kb.GetSingleKey()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read key: %w", err)
		}

		if key == kb.KeyCtrlC {
			break
		}
		event, ok := translateKey(ch, key)
		if !ok {
			continue
		}
		if err := handler.HandleKey(event); err != nil {
			return err
		}
		redraw(doc, handler, suggestions)
	}

	if err := handler.Commit(); err != nil {
		return err
	}
	fmt.Printf("\n%s\n", doc.String())

	prefs.SinglishEnabled = handler.Enabled()
	if err := config.Save(opts.PrefsPath, prefs); err != nil {
		logger.Warn("saving preferences failed", "error", err)
	}
	return nil
}

func translateKey(ch rune, key kb.Key) (input.Key, bool) {
	switch key {
	case kb.KeyRune:
		return input.Key{Kind: input.KeyRune, Rune: ch}, true
	case kb.KeySpace:
		return input.Key{Kind: input.KeySpace}, true
	case kb.KeyEnter:
		return input.Key{Kind: input.KeyEnter}, true
	case kb.KeyTab:
		return input.Key{Kind: input.KeyTab}, true
	case kb.KeyBackspace:
		return input.Key{Kind: input.KeyBackspace}, true
	case kb.KeyEsc:
		return input.Key{Kind: input.KeyEscape}, true
	default:
		return input.Key{}, false
	}
}

func redraw(doc *editor.Document, handler *input.Handler, suggestions []string) {
	var line strings.Builder
	line.WriteString("\r\x1b[K")
	line.WriteString(doc.Tail(40))
	if buffer := handler.Buffer(); buffer != "" {
		line.WriteString("[")
		line.WriteString(buffer)
		line.WriteString("]")
	}
	if len(suggestions) > 0 {
		line.WriteString("  ")
		for i, s := range suggestions {
			if i > 0 {
				line.WriteString(" ")
			}
			fmt.Fprintf(&line, "%d:%s", i+1, s)
		}
	}
	fmt.Print(line.String())
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, nil))
	return logger, func() { file.Close() }, nil
}
