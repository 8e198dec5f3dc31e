package wordmap

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "userdict.json")
	if err := os.WriteFile(path, []byte(`{"mama": "මම"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`{"mama": "මම", "api": "අපි"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case dict := <-w.Updates():
		if dict.Len() != 2 {
			t.Fatalf("reloaded dictionary has %d words", dict.Len())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "userdict.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	other := filepath.Join(dir, "other.json")
	if err := os.WriteFile(other, []byte(`{"x": "y"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Updates():
		t.Fatal("sibling file change must not trigger a reload")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherCloseCancelsPendingReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "userdict.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Close while the debounce window is still open: the pending reload
	// must be dropped, not delivered.
	if err := os.WriteFile(path, []byte(`{"mama": "මම"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	select {
	case dict, ok := <-w.Updates():
		if ok {
			t.Fatalf("reload delivered after close: %d words", dict.Len())
		}
	case <-time.After(time.Second):
	}
}

func TestWatcherSurvivesFileReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "userdict.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Editor-style save: write a temp file, rename it over the target.
	tmp := filepath.Join(dir, ".userdict.json.tmp")
	if err := os.WriteFile(tmp, []byte(`{"gedara": "ගෙදර"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case dict := <-w.Updates():
		if dict.Len() != 1 {
			t.Fatalf("reloaded dictionary has %d words", dict.Len())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after replace")
	}
}
