package stopwords

import (
	"github.com/baditaflorin/go_token_frequency/internal/ports"
)

// Set is an immutable stopword set backed by a map. Membership is
// case-sensitive; the shipped lists are lowercase.
type Set struct {
	words map[string]struct{}
}

// Contains reports whether the token is in the set.
func (s *Set) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return len(s.words)
}

// builtinWords is the fixed minimal English fallback list. It is never
// mutated and exists so a run can proceed when no richer stopword source
// is configured.
var builtinWords = []string{
	"the", "a", "an", "and", "or", "but", "if", "then", "else", "for",
	"to", "of", "in", "on", "at", "by", "is", "am", "are", "was",
	"were", "be", "been", "being", "it", "this", "that", "these", "those", "i",
	"you", "he", "she", "we", "they", "me", "him", "her", "us", "them",
	"my", "your", "his", "their",
}

// Builtin returns the built-in minimal English stopword set.
func Builtin() *Set {
	return NewFromWords(builtinWords)
}

// NewFromWords builds a set from a word list.
func NewFromWords(words []string) *Set {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &Set{words: set}
}

var _ ports.StopwordSet = (*Set)(nil)
