// token_frequency.go
// Package tokenfrequency counts normalized token frequencies in UTF-8 text.
// Raw tokens are matched by a fixed lexical rule (runs of ASCII letters and
// digits with an optional apostrophe-joined suffix), run through a
// configurable ordered sequence of normalization stages (digit filter, case
// folding, stopword removal, lemmatization, stemming) and aggregated into a
// frequency report sorted by count descending, then token ascending.
//
// This package is a thin convenience wrapper; pkg/wordfreq carries the full
// configurable API.
package tokenfrequency

import (
	"context"

	"github.com/baditaflorin/go_token_frequency/internal/core/domain"
	"github.com/baditaflorin/go_token_frequency/pkg/wordfreq"
)

// Report is the ordered frequency report produced by a run.
type Report = domain.Report

// Entry is a single report line: a normalized token and its count.
type Entry = domain.Entry

// Counter counts normalized token frequencies in text streams.
type Counter = wordfreq.Counter

// Option configures a Counter.
type Option = wordfreq.Option

// New creates a new Counter with the provided functional options.
func New(opts ...Option) (*Counter, error) {
	return wordfreq.New(opts...)
}

// CountWithDefaults counts token frequencies in text with case folding
// enabled and every other stage disabled.
func CountWithDefaults(text string) (Report, error) {
	counter, err := wordfreq.New(wordfreq.WithCaseFolding())
	if err != nil {
		return Report{}, err
	}
	return counter.CountString(context.Background(), text)
}
