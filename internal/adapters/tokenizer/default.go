package tokenizer

import (
	"regexp"

	"github.com/baditaflorin/go_token_frequency/internal/ports"
)

// tokenPattern is the fixed lexical rule: a maximal run of ASCII letters and
// digits, optionally followed by a single apostrophe-joined run of letters
// and digits. Punctuation and whitespace never match and are silently
// discarded.
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9]+(?:'[A-Za-z0-9]+)?`)

// DefaultTokenizer implements the lexical rule with the regexp engine.
type DefaultTokenizer struct{}

// NewDefaultTokenizer creates a new default tokenizer.
func NewDefaultTokenizer() ports.Tokenizer {
	return &DefaultTokenizer{}
}

// Tokens returns the raw tokens of a single line, in order of appearance.
// It is a pure function of the input line.
func (t *DefaultTokenizer) Tokens(line string) []string {
	return tokenPattern.FindAllString(line, -1)
}
