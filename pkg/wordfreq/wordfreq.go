// Package wordfreq is the public facade for the token frequency pipeline:
// tokenize a UTF-8 stream line by line, run each raw token through the
// configured normalization stages, aggregate surviving tokens and produce a
// deterministically ordered frequency report.
package wordfreq

import (
	"context"
	"io"
	"strings"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_token_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_token_frequency/internal/adapters/stopwords"
	"github.com/baditaflorin/go_token_frequency/internal/adapters/stream"
	"github.com/baditaflorin/go_token_frequency/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_token_frequency/internal/core/domain"
	"github.com/baditaflorin/go_token_frequency/internal/core/frequency"
	"github.com/baditaflorin/go_token_frequency/internal/core/pipeline"
	"github.com/baditaflorin/go_token_frequency/internal/ports"
	"github.com/baditaflorin/go_token_frequency/internal/warmup"
)

// Counter counts normalized token frequencies in text streams. All
// configuration is validated at construction: a Counter that was built
// successfully cannot fail on a per-token basis.
type Counter struct {
	processor  *stream.Processor
	normalizer *pipeline.Normalizer
	tokenizer  ports.Tokenizer
	logger     ports.Logger
	warmed     bool
}

// Option defines a functional option for configuring a Counter.
type Option func(*counterConfig)

type counterConfig struct {
	Pipeline     pipeline.Config
	Providers    pipeline.Providers
	Logger       ports.Logger
	Tokenizer    ports.Tokenizer
	Processing   stream.ProcessingConfig
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithDigitFilter enables dropping of tokens that contain any digit. The
// filter sees the raw token, before case folding.
func WithDigitFilter() Option {
	return func(cfg *counterConfig) {
		cfg.Pipeline.DropDigits = true
	}
}

// WithCaseFolding enables lowercasing of tokens, including stripping of
// English possessive suffixes ("CAT's" folds to "cat"). Folding runs before
// the stopword lookup, so stopword matching becomes case-insensitive.
func WithCaseFolding() Option {
	return func(cfg *counterConfig) {
		cfg.Pipeline.FoldCase = true
	}
}

// WithStopwords enables stopword removal against the given set. Stopword
// sets are assumed lowercase; combine with WithCaseFolding for
// case-insensitive matching.
func WithStopwords(set ports.StopwordSet) Option {
	return func(cfg *counterConfig) {
		cfg.Pipeline.DropStopwords = true
		cfg.Providers.Stopwords = set
	}
}

// WithBuiltinStopwords enables stopword removal against the built-in
// minimal English list.
func WithBuiltinStopwords() Option {
	return WithStopwords(stopwords.Builtin())
}

// WithLemmatizer enables lemmatization through the given provider. When
// stemming is also enabled, lemmatization always runs first.
func WithLemmatizer(lm ports.Lemmatizer) Option {
	return func(cfg *counterConfig) {
		cfg.Pipeline.Lemmatize = true
		cfg.Providers.Lemmatizer = lm
	}
}

// WithStemmer enables stemming through the given provider.
func WithStemmer(st ports.Stemmer) Option {
	return func(cfg *counterConfig) {
		cfg.Pipeline.Stem = true
		cfg.Providers.Stemmer = st
	}
}

// WithMinCount retains only report entries with count >= n.
func WithMinCount(n int) Option {
	return func(cfg *counterConfig) {
		cfg.Pipeline.MinCount = n
	}
}

// WithTopN truncates the sorted report to its first n entries when n > 0.
func WithTopN(n int) Option {
	return func(cfg *counterConfig) {
		cfg.Pipeline.TopN = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *counterConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortsLogger sets a custom logger that already satisfies the internal
// logging interface.
func WithPortsLogger(lg ports.Logger) Option {
	return func(cfg *counterConfig) {
		cfg.Logger = lg
	}
}

// WithTokenizer sets a custom tokenizer.
func WithTokenizer(t ports.Tokenizer) Option {
	return func(cfg *counterConfig) {
		cfg.Tokenizer = t
	}
}

// WithOptimizedTokenizer selects the byte-scanner tokenizer.
func WithOptimizedTokenizer() Option {
	return func(cfg *counterConfig) {
		factory := tokenizer.NewTokenizerFactory()
		cfg.Tokenizer = factory.CreateTokenizer(tokenizer.OptimizedTokenizerType)
	}
}

// WithParallel enables the chunk-parallel stream path with the given number
// of workers (0 means one per CPU). Partial tables are merged by summing
// counts per key, so results are identical to the sequential path.
func WithParallel(workers int) Option {
	return func(cfg *counterConfig) {
		cfg.Processing.UseParallel = true
		cfg.Processing.Workers = workers
	}
}

// WithMaxLineSize caps the size of a single input line in bytes.
func WithMaxLineSize(n int) Option {
	return func(cfg *counterConfig) {
		cfg.Processing.MaxLineSize = n
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *counterConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) Option {
	return func(cfg *counterConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Counter. It fails fast when the configuration enables a
// stage whose provider is missing or otherwise cannot be satisfied;
// processing never starts on a half-configured pipeline.
func New(opts ...Option) (*Counter, error) {
	config := &counterConfig{
		Pipeline:     pipeline.DefaultConfig(),
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Tokenizer == nil {
		config.Tokenizer = tokenizer.NewDefaultTokenizer()
	}

	normalizer, err := pipeline.New(config.Pipeline, config.Logger, config.Providers)
	if err != nil {
		return nil, err
	}

	c := &Counter{
		processor:  stream.NewProcessor(config.Logger, config.Tokenizer, normalizer, config.Processing),
		normalizer: normalizer,
		tokenizer:  config.Tokenizer,
		logger:     config.Logger,
	}

	if config.WarmUp {
		c.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return c, nil
}

// Count consumes the reader to completion and returns the ordered frequency
// report. Invalid UTF-8 in the input is replaced, never fatal.
func (c *Counter) Count(ctx context.Context, reader io.Reader) (domain.Report, error) {
	agg, err := c.processor.Process(ctx, reader)
	if err != nil {
		return domain.Report{}, err
	}
	cfg := c.normalizer.Config()
	return frequency.BuildReport(agg, cfg.MinCount, cfg.TopN), nil
}

// CountString counts token frequencies in an in-memory string.
func (c *Counter) CountString(ctx context.Context, text string) (domain.Report, error) {
	return c.Count(ctx, strings.NewReader(text))
}

// Config returns the pipeline configuration snapshot the Counter runs with.
func (c *Counter) Config() pipeline.Config {
	return c.normalizer.Config()
}

// WarmUp performs system warm-up to stabilize performance before the first
// real input.
func (c *Counter) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if c.warmed {
		c.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(c.logger, config)
	warmupMgr.RegisterTokenizer(c.tokenizer)
	warmupMgr.RegisterNormalizer(c.normalizer)

	warmupMgr.WarmUp(ctx)
	c.warmed = true
}
