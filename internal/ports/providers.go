package ports

// Lemmatizer maps a token to its dictionary base form.
// Implementations must be pure: same input, same output, no side effects.
type Lemmatizer interface {
	Lemma(token string) string
}

// Stemmer maps a token to a heuristic root form.
// Implementations must be pure: same input, same output, no side effects.
type Stemmer interface {
	Stem(token string) string
}

// StopwordSet is an immutable membership test over a set of words.
// Sets are assumed lowercase; matching is case-sensitive, so callers that
// want case-insensitive stopword removal must fold tokens first.
type StopwordSet interface {
	Contains(token string) bool
}
