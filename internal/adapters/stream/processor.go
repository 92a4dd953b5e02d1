package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_token_frequency/internal/core/frequency"
	"github.com/baditaflorin/go_token_frequency/internal/core/pipeline"
	"github.com/baditaflorin/go_token_frequency/internal/pool"
	"github.com/baditaflorin/go_token_frequency/internal/ports"
)

// Constants for line processing
const (
	// DefaultMaxLineSize caps the scanner token size for a single line.
	DefaultMaxLineSize = 1024 * 1024 // 1MB

	// DefaultBatchSize defines how many lines go into one parallel job.
	DefaultBatchSize = 100

	// ContextCheckFrequency defines how often to check for context
	// cancellation, in lines.
	ContextCheckFrequency = 500

	// initialScanBuffer is the starting scanner buffer size.
	initialScanBuffer = 64 * 1024
)

// ProcessingConfig defines configuration for stream processing.
type ProcessingConfig struct {
	MaxLineSize int
	BatchSize   int
	// Workers > 0 with UseParallel set bounds the worker pool; 0 means one
	// worker per CPU.
	Workers     int
	UseParallel bool
}

// Processor drives the tokenize, normalize, aggregate loop over a
// line-oriented reader. Tokens never span line boundaries, so each line is
// an independent unit of work.
type Processor struct {
	logger     ports.Logger
	tokenizer  ports.Tokenizer
	normalizer *pipeline.Normalizer

	batchPool *pool.LineBatchPool
	config    ProcessingConfig
}

// NewProcessor creates a new stream processor.
func NewProcessor(
	logger ports.Logger,
	tokenizer ports.Tokenizer,
	normalizer *pipeline.Normalizer,
	config ProcessingConfig,
) *Processor {
	if config.MaxLineSize <= 0 {
		config.MaxLineSize = DefaultMaxLineSize
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	return &Processor{
		logger:     logger,
		tokenizer:  tokenizer,
		normalizer: normalizer,
		batchPool:  pool.NewLineBatchPool(config.BatchSize),
		config:     config,
	}
}

// Process consumes the reader to completion and returns the aggregated
// frequency table. Malformed UTF-8 is replaced with U+FFFD and never fatal;
// the only error sources are the reader itself and context cancellation.
func (p *Processor) Process(ctx context.Context, reader io.Reader) (*frequency.Aggregator, error) {
	if p.config.UseParallel {
		return p.processParallel(ctx, reader)
	}
	return p.processSequential(ctx, reader)
}

func (p *Processor) processSequential(ctx context.Context, reader io.Reader) (*frequency.Aggregator, error) {
	agg := frequency.NewAggregator()
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, initialScanBuffer), p.config.MaxLineSize)

	lines := 0
	for scanner.Scan() {
		p.consumeLine(sanitizeLine(scanner.Text()), agg)
		lines++
		if lines%ContextCheckFrequency == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	p.logger.Debug("Processed input stream",
		"lines", lines,
		"total_tokens", agg.Total(),
		"unique_tokens", agg.Unique(),
	)
	return agg, nil
}

// consumeLine tokenizes one line and feeds surviving tokens to agg.
func (p *Processor) consumeLine(line string, agg *frequency.Aggregator) {
	for _, raw := range p.tokenizer.Tokens(line) {
		if token, ok := p.normalizer.Normalize(raw); ok {
			agg.Add(token)
		}
	}
}

// sanitizeLine replaces invalid UTF-8 sequences with the replacement
// character. Valid lines pass through without allocation.
func sanitizeLine(line string) string {
	if utf8.ValidString(line) {
		return line
	}
	return strings.ToValidUTF8(line, "�")
}
