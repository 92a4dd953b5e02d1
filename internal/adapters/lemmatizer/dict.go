package lemmatizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baditaflorin/go_token_frequency/internal/ports"
)

// Dict is a dictionary-backed lemmatizer: tokens present in the dictionary
// map to their base form, everything else maps to itself. The dictionary is
// loaded once at construction and never mutated.
type Dict struct {
	forms map[string]string
}

// NewFromFile loads a lemma dictionary from a CSV file with one "form,lemma"
// pair per line. A missing or empty resource is a construction error so that
// a run requesting lemmatization fails before processing starts.
func NewFromFile(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lemma dictionary: %w", err)
	}
	defer f.Close()

	dict, err := NewFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("lemma dictionary %s: %w", path, err)
	}
	return dict, nil
}

// NewFromReader reads "form,lemma" lines from r. Blank lines and lines
// starting with '#' are skipped; malformed lines are rejected.
func NewFromReader(r io.Reader) (*Dict, error) {
	forms := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		form, lemma, ok := strings.Cut(line, ",")
		if !ok || form == "" || lemma == "" {
			return nil, fmt.Errorf("malformed entry on line %d: %q", lineNo, line)
		}
		forms[form] = lemma
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lemma dictionary: %w", err)
	}
	if len(forms) == 0 {
		return nil, errors.New("lemma dictionary contains no entries")
	}
	return &Dict{forms: forms}, nil
}

// NewStatic builds a lemmatizer from an in-memory dictionary. The map is
// copied so later mutation by the caller cannot affect the lemmatizer.
func NewStatic(forms map[string]string) *Dict {
	copied := make(map[string]string, len(forms))
	for form, lemma := range forms {
		copied[form] = lemma
	}
	return &Dict{forms: copied}
}

// Lemma returns the base form of the token, or the token itself when the
// dictionary has no entry for it.
func (d *Dict) Lemma(token string) string {
	if lemma, ok := d.forms[token]; ok {
		return lemma
	}
	return token
}

// Len returns the number of dictionary entries.
func (d *Dict) Len() int {
	return len(d.forms)
}

var _ ports.Lemmatizer = (*Dict)(nil)
