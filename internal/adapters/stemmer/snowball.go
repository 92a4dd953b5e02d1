package stemmer

import (
	"fmt"

	"github.com/kljensen/snowball"

	"github.com/baditaflorin/go_token_frequency/internal/ports"
)

// EnglishLanguage is the snowball language code for English.
const EnglishLanguage = "english"

// Snowball adapts the snowball stemmer family to the Stemmer port.
type Snowball struct {
	language string
}

// NewSnowball creates a snowball stemmer for the given language. The
// language is validated at construction by stemming a probe word, so an
// unsupported language fails before any token is processed.
func NewSnowball(language string) (ports.Stemmer, error) {
	if _, err := snowball.Stem("tests", language, false); err != nil {
		return nil, fmt.Errorf("snowball stemmer for language %q unavailable: %w", language, err)
	}
	return &Snowball{language: language}, nil
}

// NewEnglish creates a snowball stemmer for English.
func NewEnglish() (ports.Stemmer, error) {
	return NewSnowball(EnglishLanguage)
}

// Stem returns the snowball stem of the token. The language was validated
// at construction, so per-token errors cannot occur on supported input;
// the token is returned unchanged if the library still refuses it.
func (s *Snowball) Stem(token string) string {
	stemmed, err := snowball.Stem(token, s.language, false)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}
