package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWordList(t *testing.T) {
	wl := DefaultWordList()

	if wl.Len() < 100 {
		t.Errorf("Len() = %d, want a reasonable default list", wl.Len())
	}
	for _, w := range []string{"crane", "CRANE", "slate", "eerie"} {
		if !wl.Allowed(w) {
			t.Errorf("Allowed(%q) = false", w)
		}
	}
	if wl.IsAnswer("eerie") {
		t.Error("extra guesses should not be answers")
	}
}

func TestLoadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# my words\nTRAIN\n\nbrain\ntoolong\nab1de\ntrain\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	wl, err := LoadWordList(path)
	if err != nil {
		t.Fatalf("LoadWordList() error = %v", err)
	}
	if wl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", wl.Len())
	}
	if !wl.IsAnswer("train") || !wl.IsAnswer("brain") {
		t.Error("expected train and brain as answers")
	}
	if wl.Allowed("toolong") {
		t.Error("invalid words should be skipped")
	}
}

func TestLoadWordListErrors(t *testing.T) {
	if _, err := LoadWordList(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("# nothing\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWordList(path); !errors.Is(err, ErrEmptyWordList) {
		t.Errorf("error = %v, want ErrEmptyWordList", err)
	}
}

func TestNewWordList(t *testing.T) {
	wl, err := NewWordList([]string{"crane"}, "slate")
	if err != nil {
		t.Fatalf("NewWordList() error = %v", err)
	}
	if wl.Random() != "crane" {
		t.Error("Random() should return the only answer")
	}
	if !wl.Allowed("slate") || wl.IsAnswer("slate") {
		t.Error("extra words are allowed guesses only")
	}

	if _, err := NewWordList(nil); !errors.Is(err, ErrEmptyWordList) {
		t.Errorf("error = %v, want ErrEmptyWordList", err)
	}
}
