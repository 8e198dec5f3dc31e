package wordmap

import (
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the user dictionary when its file changes on disk, so an
// external edit shows up without restarting. Reloads arrive on Updates();
// the owner drains that channel from its event loop.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	updates   chan *UserDict
	done      chan struct{}
	logger    *slog.Logger
}

// Watch starts watching the user dictionary file. The containing directory
// is watched rather than the file itself, so editors that replace the file
// (write temp, rename) still trigger a reload.
func Watch(path string, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		path:      absPath,
		debounce:  200 * time.Millisecond,
		updates:   make(chan *UserDict, 1),
		done:      make(chan struct{}),
		logger:    logger,
	}
	go w.run()
	return w, nil
}

// Updates delivers freshly loaded dictionaries after on-disk changes.
func (w *Watcher) Updates() <-chan *UserDict {
	return w.updates
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			dict, err := LoadUserDict(w.path)
			if err != nil {
				w.logger.Warn("user dictionary reload failed", "path", w.path, "error", err)
				continue
			}
			select {
			case w.updates <- dict:
			default:
				// Drop if the owner has not drained the previous reload;
				// the next change will deliver a newer one anyway.
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("user dictionary watcher error", "error", err)
		}
	}
}
