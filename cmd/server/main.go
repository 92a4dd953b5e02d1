// Command server exposes the token frequency pipeline over HTTP.
//
//	POST /v1/frequency  {"text": "...", "lowercase": true, ...}
//	GET  /health
//
// Pipelines are constructed per request from the request's stage toggles;
// construction failures (missing lemma dictionary, unsupported stemmer
// language) map to 400 before any text is processed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_token_frequency/internal/adapters/lemmatizer"
	"github.com/baditaflorin/go_token_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_token_frequency/internal/adapters/stemmer"
	"github.com/baditaflorin/go_token_frequency/internal/adapters/stopwords"
	"github.com/baditaflorin/go_token_frequency/internal/ports"
	"github.com/baditaflorin/go_token_frequency/pkg/wordfreq"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
)

// Request represents a frequency computation request. Stage toggles mirror
// the pipeline configuration; lemmas, when present, enable lemmatization
// with an inline dictionary.
type Request struct {
	Text            string            `json:"text"`
	Lowercase       bool              `json:"lowercase,omitempty"`
	DropDigits      bool              `json:"drop_digits,omitempty"`
	Stopwords       bool              `json:"stopwords,omitempty"`
	Stem            bool              `json:"stem,omitempty"`
	StemmerLanguage string            `json:"stemmer_language,omitempty"`
	Lemmas          map[string]string `json:"lemmas,omitempty"`
	MinCount        int               `json:"min_count,omitempty"`
	Top             int               `json:"top,omitempty"`
}

// EntryResponse is a single report line.
type EntryResponse struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Response represents a frequency computation response.
type Response struct {
	Entries      []EntryResponse `json:"entries"`
	TotalTokens  int             `json:"total_tokens"`
	UniqueTokens int             `json:"unique_tokens"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

var appLogger ports.Logger

func main() {
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	logFile := flag.String("log-file", "", "Log file path (empty = stderr)")
	flag.Parse()

	var err error
	appLogger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()

	appLogger.Info("Starting token frequency HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
	)

	server := &fasthttp.Server{
		Handler:            requestHandler,
		ReadTimeout:        *readTimeout,
		WriteTimeout:       *writeTimeout,
		MaxRequestBodySize: *maxRequestSize,
		Name:               "token-frequency-server",
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	done := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		s := <-sig
		appLogger.Info("Shutting down", "signal", s.String())
		if err := server.Shutdown(); err != nil {
			appLogger.Error("Error during shutdown", "error", err)
		}
		close(done)
	}()

	addr := fmt.Sprintf(":%d", *port)
	if err := server.ListenAndServe(addr); err != nil {
		appLogger.Error("Server error", "error", err)
		os.Exit(1)
	}
	<-done
}

func createLogger(logFile string) (ports.Logger, error) {
	if logFile == "" {
		return logger.NewStdLogger()
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return logger.NewCustomStdLogger(l.Config{
		Output:      f,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
	})
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/health":
		handleHealth(ctx)
	case "/v1/frequency":
		handleFrequency(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString(`{"status":"ok"}`)
}

func handleFrequency(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "use POST")
		return
	}

	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	counter, err := buildCounter(&req)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	report, err := counter.CountString(context.Background(), req.Text)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	appLogger.Debug("Computed frequency report",
		"total_tokens", report.TotalTokens,
		"unique_tokens", report.UniqueTokens,
		"elapsed", time.Since(start),
	)

	entries := make([]EntryResponse, len(report.Entries))
	for i, entry := range report.Entries {
		entries[i] = EntryResponse{Token: entry.Token, Count: entry.Count}
	}
	writeJSON(ctx, fasthttp.StatusOK, Response{
		Entries:      entries,
		TotalTokens:  report.TotalTokens,
		UniqueTokens: report.UniqueTokens,
	})
}

// buildCounter translates the request's stage toggles into pipeline options.
func buildCounter(req *Request) (*wordfreq.Counter, error) {
	opts := []wordfreq.Option{
		wordfreq.WithPortsLogger(appLogger),
		wordfreq.WithOptimizedTokenizer(),
		wordfreq.WithMinCount(req.MinCount),
		wordfreq.WithTopN(req.Top),
	}
	if req.DropDigits {
		opts = append(opts, wordfreq.WithDigitFilter())
	}
	if req.Lowercase {
		opts = append(opts, wordfreq.WithCaseFolding())
	}
	if req.Stopwords {
		opts = append(opts, wordfreq.WithStopwords(stopwords.NewSnowballEnglish()))
	}
	if len(req.Lemmas) > 0 {
		opts = append(opts, wordfreq.WithLemmatizer(lemmatizer.NewStatic(req.Lemmas)))
	}
	if req.Stem {
		language := req.StemmerLanguage
		if language == "" {
			language = stemmer.EnglishLanguage
		}
		st, err := stemmer.NewSnowball(language)
		if err != nil {
			return nil, err
		}
		opts = append(opts, wordfreq.WithStemmer(st))
	}
	return wordfreq.New(opts...)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	data, _ := json.Marshal(ErrorResponse{Error: msg})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}
