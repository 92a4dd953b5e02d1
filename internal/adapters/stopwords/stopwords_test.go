package stopwords

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinSet(t *testing.T) {
	set := Builtin()

	if got := set.Len(); got != 44 {
		t.Errorf("expected 44 built-in words, got %d", got)
	}

	for _, w := range []string{"the", "a", "an", "and", "their", "being"} {
		if !set.Contains(w) {
			t.Errorf("expected builtin set to contain %q", w)
		}
	}
	for _, w := range []string{"cat", "THE", ""} {
		if set.Contains(w) {
			t.Errorf("expected builtin set not to contain %q", w)
		}
	}
}

func TestSnowballEnglish(t *testing.T) {
	set := NewSnowballEnglish()
	if !set.Contains("the") {
		t.Error("expected snowball set to contain \"the\"")
	}
	if set.Contains("cat") {
		t.Error("expected snowball set not to contain \"cat\"")
	}
}

func TestNewFromReader(t *testing.T) {
	input := "the\n# a comment\n\n  cat  \nmat\n"
	set, err := NewFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 3 {
		t.Errorf("expected 3 words, got %d", set.Len())
	}
	if !set.Contains("cat") || !set.Contains("mat") || !set.Contains("the") {
		t.Error("expected trimmed words to be present")
	}
}

func TestNewFromReaderEmpty(t *testing.T) {
	if _, err := NewFromReader(strings.NewReader("# only comments\n\n")); err == nil {
		t.Error("expected error for empty stopword list")
	}
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Contains("alpha") || !set.Contains("beta") {
		t.Error("expected words from file to be present")
	}
}

func TestNewFromFileMissing(t *testing.T) {
	if _, err := NewFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
