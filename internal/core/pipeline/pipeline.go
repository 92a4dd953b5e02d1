package pipeline

import (
	"errors"
	"strings"

	"github.com/baditaflorin/go_token_frequency/internal/ports"
)

// Construction-time errors. A stage enabled without its provider is a
// configuration error: it is detected once, before any token is processed,
// never mid-stream.
var (
	ErrNoStopwords  = errors.New("stopword removal enabled but no stopword set provided")
	ErrNoLemmatizer = errors.New("lemmatization enabled but no lemmatizer provided")
	ErrNoStemmer    = errors.New("stemming enabled but no stemmer provided")
)

// Providers bundles the external linguistic collaborators injected at
// construction time.
type Providers struct {
	Stopwords  ports.StopwordSet
	Lemmatizer ports.Lemmatizer
	Stemmer    ports.Stemmer
}

// Normalizer applies the configured normalization stages to raw tokens.
//
// The stage order is fixed and load-bearing, because stages are not
// commutative:
//
//  1. digit filter, on the raw token
//  2. case fold
//  3. stopword lookup, on the folded token
//  4. lemmatize
//  5. stem
//
// In particular the digit filter sees tokens before folding, stopword
// matching sees them after folding, and lemmatization always runs before
// stemming when both are enabled.
type Normalizer struct {
	cfg        Config
	stopwords  ports.StopwordSet
	lemmatizer ports.Lemmatizer
	stemmer    ports.Stemmer
}

// New creates a Normalizer for the given configuration and providers. It
// fails fast if the configuration is invalid or enables a stage whose
// provider is missing.
func New(cfg Config, logger ports.Logger, providers Providers) (*Normalizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.DropStopwords && providers.Stopwords == nil {
		return nil, ErrNoStopwords
	}
	if cfg.Lemmatize && providers.Lemmatizer == nil {
		return nil, ErrNoLemmatizer
	}
	if cfg.Stem && providers.Stemmer == nil {
		return nil, ErrNoStemmer
	}

	if logger != nil {
		logger.Debug("Constructed normalization pipeline",
			"drop_digits", cfg.DropDigits,
			"fold_case", cfg.FoldCase,
			"drop_stopwords", cfg.DropStopwords,
			"lemmatize", cfg.Lemmatize,
			"stem", cfg.Stem,
			"min_count", cfg.MinCount,
			"top_n", cfg.TopN,
		)
	}

	return &Normalizer{
		cfg:        cfg,
		stopwords:  providers.Stopwords,
		lemmatizer: providers.Lemmatizer,
		stemmer:    providers.Stemmer,
	}, nil
}

// Config returns the configuration snapshot the Normalizer was built with.
func (n *Normalizer) Config() Config {
	return n.cfg
}

// Normalize runs a raw token through the enabled stages and reports whether
// it survived. Filtering stages short-circuit: a dropped token is never seen
// by later stages. Dropping is not an error; normalization is total over
// valid token strings.
func (n *Normalizer) Normalize(token string) (string, bool) {
	if n.cfg.DropDigits && containsDigit(token) {
		return "", false
	}
	if n.cfg.FoldCase {
		token = foldToken(token)
	}
	if n.cfg.DropStopwords && n.stopwords.Contains(token) {
		return "", false
	}
	if n.cfg.Lemmatize {
		token = n.lemmatizer.Lemma(token)
	}
	if n.cfg.Stem {
		token = n.stemmer.Stem(token)
	}
	if token == "" {
		// A provider reduced the token to nothing; nothing to count.
		return "", false
	}
	return token, true
}

// foldToken lowercases a token and strips an English possessive suffix, so
// "CAT's" and "cat" aggregate under the same key. Contractions with other
// suffixes ("don't") are left intact.
func foldToken(token string) string {
	token = strings.ToLower(token)
	if strings.HasSuffix(token, "'s") {
		token = token[:len(token)-2]
	}
	return token
}

func containsDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
