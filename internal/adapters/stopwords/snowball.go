package stopwords

import (
	"github.com/kljensen/snowball/english"

	"github.com/baditaflorin/go_token_frequency/internal/ports"
)

// SnowballEnglish exposes the snowball English stopword list as a
// membership test. It is considerably richer than the built-in fallback
// set and needs no external resource.
type SnowballEnglish struct{}

// NewSnowballEnglish creates the snowball-backed English stopword set.
func NewSnowballEnglish() ports.StopwordSet {
	return SnowballEnglish{}
}

// Contains reports whether the token is an English stopword.
func (SnowballEnglish) Contains(token string) bool {
	return english.IsStopWord(token)
}
