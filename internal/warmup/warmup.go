package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_token_frequency/internal/core/pipeline"
	"github.com/baditaflorin/go_token_frequency/internal/ports"
)

// WarmupConfig defines configuration for warming up the system before real
// input is processed: it primes buffer pools, branch predictors and any
// lazily-built provider state.
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup, in bytes
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration.
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     200,
		SampleTextSize: 1000,
		Duration:       2 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles warmup of tokenizers and normalization pipelines.
type Manager struct {
	logger      ports.Logger
	tokenizers  []ports.Tokenizer
	normalizers []*pipeline.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterTokenizer adds a tokenizer to be warmed up.
func (m *Manager) RegisterTokenizer(t ports.Tokenizer) {
	m.tokenizers = append(m.tokenizers, t)
}

// RegisterNormalizer adds a normalization pipeline to be warmed up.
func (m *Manager) RegisterNormalizer(n *pipeline.Normalizer) {
	m.normalizers = append(m.normalizers, n)
}

// WarmUp runs the warmup process for all registered components.
func (m *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	m.logger.Debug("Starting warmup",
		"tokenizers", len(m.tokenizers),
		"normalizers", len(m.normalizers),
		"concurrency", m.config.Concurrency,
		"iterations", m.config.Iterations,
	)

	warmupCtx := ctx
	if m.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, m.config.Duration)
		defer cancel()
	}

	sample := sampleText(m.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < m.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iter := 0; iter < m.config.Iterations; iter++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
				}
				m.exerciseOnce(sample)
			}
		}()
	}
	wg.Wait()

	if m.config.ForceGC {
		runtime.GC()
	}

	m.logger.Debug("Warmup complete", "elapsed", time.Since(startTime))
}

// exerciseOnce runs the sample text through every registered tokenizer and
// every tokenizer/normalizer pair.
func (m *Manager) exerciseOnce(sample string) {
	for _, tok := range m.tokenizers {
		tokens := tok.Tokens(sample)
		for _, n := range m.normalizers {
			for _, raw := range tokens {
				n.Normalize(raw)
			}
		}
	}
}

func sampleText(size int) string {
	const seed = "The quick brown fox jumps over the lazy dog and doesn't stop until 2020 is over. "
	var sb strings.Builder
	sb.Grow(size + len(seed))
	for sb.Len() < size {
		sb.WriteString(seed)
	}
	return sb.String()
}
