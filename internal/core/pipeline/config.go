package pipeline

import "errors"

// Config is an immutable snapshot of the normalization stages to run and the
// post-filters applied when formatting the frequency table. It is built once
// before processing and never mutated mid-run.
type Config struct {
	// DropDigits drops any token containing a digit, evaluated on the raw
	// token before case folding.
	DropDigits bool
	// FoldCase lowercases tokens and strips English possessive suffixes
	// before the stopword lookup, making stopword matching
	// case-insensitive.
	FoldCase bool
	// DropStopwords drops tokens present in the configured stopword set,
	// tested after any case folding.
	DropStopwords bool
	// Lemmatize replaces each surviving token with its lemma.
	Lemmatize bool
	// Stem replaces each surviving token (possibly already lemmatized) with
	// its stem. When both Lemmatize and Stem are enabled, lemmatization runs
	// strictly first.
	Stem bool

	// MinCount retains only report entries with count >= MinCount. Values
	// below 1 are treated as 1 (no filtering).
	MinCount int
	// TopN keeps only the first N entries after sorting when > 0.
	TopN int
}

// DefaultConfig returns a configuration with every stage disabled and no
// post-filtering: raw tokens are counted as-is.
func DefaultConfig() Config {
	return Config{MinCount: 1}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.TopN < 0 {
		return errors.New("topN must not be negative")
	}
	return nil
}
