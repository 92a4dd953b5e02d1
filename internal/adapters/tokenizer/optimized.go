package tokenizer

import (
	"github.com/baditaflorin/go_token_frequency/internal/ports"
)

// OptimizedTokenizer implements the same lexical rule as DefaultTokenizer
// with a hand-rolled byte scanner and a pre-computed decision table for
// ASCII characters, avoiding the regexp engine on the per-line hot path.
type OptimizedTokenizer struct {
	// Pre-computed table for ASCII characters (0-127): true when the byte
	// is a letter or digit and may be part of a token.
	asciiAlnum [128]bool
}

// NewOptimizedTokenizer creates a new optimized tokenizer.
func NewOptimizedTokenizer() ports.Tokenizer {
	t := &OptimizedTokenizer{}
	for i := 0; i < 128; i++ {
		b := byte(i)
		t.asciiAlnum[i] = (b >= 'a' && b <= 'z') ||
			(b >= 'A' && b <= 'Z') ||
			(b >= '0' && b <= '9')
	}
	return t
}

// Tokens scans a single line for tokens. Bytes outside the ASCII range can
// never be part of a token, so multi-byte UTF-8 sequences are skipped
// byte-wise like any other separator.
func (t *OptimizedTokenizer) Tokens(line string) []string {
	var tokens []string
	i, n := 0, len(line)
	for i < n {
		if line[i] >= 128 || !t.asciiAlnum[line[i]] {
			i++
			continue
		}

		start := i
		for i < n && line[i] < 128 && t.asciiAlnum[line[i]] {
			i++
		}

		// Optional single apostrophe-joined suffix. A second apostrophe
		// ends the token.
		if i+1 < n && line[i] == '\'' && line[i+1] < 128 && t.asciiAlnum[line[i+1]] {
			i++
			for i < n && line[i] < 128 && t.asciiAlnum[line[i]] {
				i++
			}
		}

		tokens = append(tokens, line[start:i])
	}
	return tokens
}

// TokenizerFactory creates the appropriate tokenizer based on performance
// requirements.
type TokenizerFactory struct{}

// NewTokenizerFactory creates a new tokenizer factory.
func NewTokenizerFactory() *TokenizerFactory {
	return &TokenizerFactory{}
}

// TokenizerType selects which tokenizer implementation to create.
type TokenizerType int

const (
	// DefaultTokenizerType is the regexp-based tokenizer.
	DefaultTokenizerType TokenizerType = iota
	// OptimizedTokenizerType uses the byte scanner with a precomputed
	// ASCII table.
	OptimizedTokenizerType
)

// CreateTokenizer creates a tokenizer of the specified type.
func (f *TokenizerFactory) CreateTokenizer(tokenizerType TokenizerType) ports.Tokenizer {
	switch tokenizerType {
	case OptimizedTokenizerType:
		return NewOptimizedTokenizer()
	default:
		return NewDefaultTokenizer()
	}
}
