package stopwords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// NewFromFile loads a stopword set from a file with one word per line.
// Blank lines and lines starting with '#' are skipped. A missing or empty
// file is a construction error: callers that requested a file-backed set
// must fail before processing starts rather than silently degrade.
func NewFromFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopword file: %w", err)
	}
	defer f.Close()

	set, err := NewFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("stopword file %s: %w", path, err)
	}
	return set, nil
}

// NewFromReader reads a one-word-per-line stopword list from r.
func NewFromReader(r io.Reader) (*Set, error) {
	words := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words[w] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopword list: %w", err)
	}
	if len(words) == 0 {
		return nil, errors.New("stopword list contains no words")
	}
	return &Set{words: words}, nil
}
