package stream

import (
	"context"
	"strings"
	"testing"

	"github.com/baditaflorin/go_token_frequency/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_token_frequency/internal/core/pipeline"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }

func newTestProcessor(t *testing.T, config ProcessingConfig) *Processor {
	t.Helper()
	normalizer, err := pipeline.New(pipeline.Config{FoldCase: true}, nil, pipeline.Providers{})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	return NewProcessor(nopLogger{}, tokenizer.NewDefaultTokenizer(), normalizer, config)
}

func TestProcessSequential(t *testing.T) {
	p := newTestProcessor(t, ProcessingConfig{})
	input := "The cat sat.\nThe CAT ran!\n"

	agg, err := p.Process(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCounts := map[string]int{"the": 2, "cat": 2, "sat": 1, "ran": 1}
	for token, want := range wantCounts {
		if got := agg.Count(token); got != want {
			t.Errorf("token %q: expected count %d, got %d", token, want, got)
		}
	}
	if agg.Total() != 6 {
		t.Errorf("expected total 6, got %d", agg.Total())
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "beta", "gamma", "gamma"}
	var sb strings.Builder
	for i := 0; i < 400; i++ {
		sb.WriteString(words[i%len(words)])
		sb.WriteString(" ")
		sb.WriteString(words[(i*3)%len(words)])
		sb.WriteString("\n")
	}
	input := sb.String()

	sequential := newTestProcessor(t, ProcessingConfig{})
	parallel := newTestProcessor(t, ProcessingConfig{UseParallel: true, Workers: 4, BatchSize: 16})

	seqAgg, err := sequential.Process(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("sequential: unexpected error: %v", err)
	}
	parAgg, err := parallel.Process(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("parallel: unexpected error: %v", err)
	}

	if seqAgg.Total() != parAgg.Total() {
		t.Errorf("totals differ: sequential %d, parallel %d", seqAgg.Total(), parAgg.Total())
	}
	if seqAgg.Unique() != parAgg.Unique() {
		t.Errorf("unique counts differ: sequential %d, parallel %d", seqAgg.Unique(), parAgg.Unique())
	}
	for _, word := range words {
		if seqAgg.Count(word) != parAgg.Count(word) {
			t.Errorf("token %q: sequential %d, parallel %d",
				word, seqAgg.Count(word), parAgg.Count(word))
		}
	}
}

func TestInvalidUTF8Recovered(t *testing.T) {
	p := newTestProcessor(t, ProcessingConfig{})
	input := "good \xff\xfe words\n"

	agg, err := p.Process(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("malformed input must not be fatal, got %v", err)
	}
	if agg.Count("good") != 1 || agg.Count("words") != 1 {
		t.Errorf("expected surrounding tokens to survive, got good=%d words=%d",
			agg.Count("good"), agg.Count("words"))
	}
}

func TestSanitizeLine(t *testing.T) {
	if got := sanitizeLine("plain ascii"); got != "plain ascii" {
		t.Errorf("valid input must pass through, got %q", got)
	}
	if got := sanitizeLine("a\xffb"); got != "a�b" {
		t.Errorf("expected replacement character, got %q", got)
	}
}

func TestProcessCancelled(t *testing.T) {
	p := newTestProcessor(t, ProcessingConfig{})

	var sb strings.Builder
	for i := 0; i < 2*ContextCheckFrequency; i++ {
		sb.WriteString("word\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Process(ctx, strings.NewReader(sb.String())); err == nil {
		t.Error("expected error from cancelled context")
	}
}
