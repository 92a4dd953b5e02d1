package pipeline

import (
	"errors"
	"strings"
	"testing"
)

type fakeStopwords map[string]struct{}

func (f fakeStopwords) Contains(token string) bool {
	_, ok := f[token]
	return ok
}

type fakeLemmatizer map[string]string

func (f fakeLemmatizer) Lemma(token string) string {
	if lemma, ok := f[token]; ok {
		return lemma
	}
	return token
}

// suffixStemmer strips a fixed suffix, enough to observe stage ordering.
type suffixStemmer string

func (s suffixStemmer) Stem(token string) string {
	return strings.TrimSuffix(token, string(s))
}

func TestConstructionFailsFast(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{
			name: "stopwords enabled without set",
			cfg:  Config{DropStopwords: true},
			want: ErrNoStopwords,
		},
		{
			name: "lemmatize enabled without lemmatizer",
			cfg:  Config{Lemmatize: true},
			want: ErrNoLemmatizer,
		},
		{
			name: "stem enabled without stemmer",
			cfg:  Config{Stem: true},
			want: ErrNoStemmer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg, nil, Providers{})
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	_, err := New(Config{TopN: -1}, nil, Providers{})
	if err == nil {
		t.Fatal("expected error for negative topN")
	}
}

func TestNormalizeStages(t *testing.T) {
	stops := fakeStopwords{"the": {}, "on": {}}
	lemmas := fakeLemmatizer{"mice": "mouse", "better": "good"}

	tests := []struct {
		name     string
		cfg      Config
		token    string
		want     string
		survives bool
	}{
		{
			name:     "no stages is identity",
			cfg:      Config{},
			token:    "The",
			want:     "The",
			survives: true,
		},
		{
			name:     "digit filter drops mixed tokens",
			cfg:      Config{DropDigits: true},
			token:    "3rd",
			survives: false,
		},
		{
			name:     "digit filter drops pure numbers",
			cfg:      Config{DropDigits: true},
			token:    "2020",
			survives: false,
		},
		{
			name:     "digit filter sees raw token before folding",
			cfg:      Config{DropDigits: true, FoldCase: true},
			token:    "MP3",
			survives: false,
		},
		{
			name:     "case folding lowercases",
			cfg:      Config{FoldCase: true},
			token:    "HeLLo",
			want:     "hello",
			survives: true,
		},
		{
			name:     "case folding strips possessive suffix",
			cfg:      Config{FoldCase: true},
			token:    "CAT's",
			want:     "cat",
			survives: true,
		},
		{
			name:     "case folding keeps contractions",
			cfg:      Config{FoldCase: true},
			token:    "Don't",
			want:     "don't",
			survives: true,
		},
		{
			name:     "stopword match is case-insensitive with folding",
			cfg:      Config{FoldCase: true, DropStopwords: true},
			token:    "THE",
			survives: false,
		},
		{
			name:     "stopword match is case-sensitive without folding",
			cfg:      Config{DropStopwords: true},
			token:    "THE",
			want:     "THE",
			survives: true,
		},
		{
			name:     "lemmatizer replaces known forms",
			cfg:      Config{Lemmatize: true},
			token:    "mice",
			want:     "mouse",
			survives: true,
		},
		{
			name:     "lemmatizer passes unknown forms through",
			cfg:      Config{Lemmatize: true},
			token:    "cat",
			want:     "cat",
			survives: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := New(tc.cfg, nil, Providers{
				Stopwords:  stops,
				Lemmatizer: lemmas,
				Stemmer:    suffixStemmer("ing"),
			})
			if err != nil {
				t.Fatalf("unexpected construction error: %v", err)
			}
			got, ok := n.Normalize(tc.token)
			if ok != tc.survives {
				t.Fatalf("expected survives=%v, got %v (token %q)", tc.survives, ok, got)
			}
			if ok && got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

// Lemmatization must run strictly before stemming: the two orders produce
// different results for a form whose lemma has a stemmable suffix.
func TestLemmatizeBeforeStem(t *testing.T) {
	lemmas := fakeLemmatizer{"went": "going"}
	st := suffixStemmer("ing")

	n, err := New(Config{Lemmatize: true, Stem: true}, nil, Providers{
		Lemmatizer: lemmas,
		Stemmer:    st,
	})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	// lemmatize-then-stem: went -> going -> go
	// stem-then-lemmatize would leave went -> went -> going
	got, ok := n.Normalize("went")
	if !ok {
		t.Fatal("token unexpectedly dropped")
	}
	if got != "go" {
		t.Errorf("expected lemmatize-then-stem result %q, got %q", "go", got)
	}
}

func TestEmptyProviderOutputDropped(t *testing.T) {
	n, err := New(Config{Stem: true}, nil, Providers{Stemmer: suffixStemmer("ing")})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	if got, ok := n.Normalize("ing"); ok {
		t.Errorf("expected empty result to be dropped, got %q", got)
	}
}
