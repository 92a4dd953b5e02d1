// Command wordfreq normalizes a UTF-8 text file and prints token counts.
//
// Report lines ("token count", count descending then token ascending) go to
// stdout; a summary line goes to stderr:
//
//	[stats] total_tokens=N unique_tokens=M
//
// Requesting a stage whose backing resource is unavailable (a missing lemma
// dictionary, an unsupported stemmer language, an unreadable stopword file)
// aborts before any input is read.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_token_frequency/internal/adapters/lemmatizer"
	"github.com/baditaflorin/go_token_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_token_frequency/internal/adapters/stemmer"
	"github.com/baditaflorin/go_token_frequency/internal/adapters/stopwords"
	"github.com/baditaflorin/go_token_frequency/pkg/wordfreq"
)

func main() {
	os.Exit(run())
}

func run() int {
	lowercase := flag.Bool("lowercase", false, "Lowercase tokens")
	stem := flag.Bool("stem", false, "Apply stemming")
	lemmatize := flag.Bool("lemmatize", false, "Apply lemmatization (requires -lemma-dict)")
	stopwordsOn := flag.Bool("stopwords", false, "Remove stopwords")
	myopt := flag.Bool("myopt", false, "Remove tokens containing any digit (e.g., 2020, 3rd)")
	minCount := flag.Int("min_count", 1, "Only output tokens with count >= min_count")
	top := flag.Int("top", 0, "If >0, only output top N tokens")
	stopwordFile := flag.String("stopword-file", "", "Stopword list file, one word per line (default: built-in minimal list)")
	lemmaDict := flag.String("lemma-dict", "", "Lemma dictionary CSV file with form,lemma pairs")
	language := flag.String("language", stemmer.EnglishLanguage, "Snowball stemmer language")
	optimized := flag.Bool("optimized", false, "Use the byte-scanner tokenizer")
	parallel := flag.Bool("parallel", false, "Process input lines with a worker pool")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input-path>\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Normalize text and count tokens. Use \"-\" as input path to read stdin.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	inputPath := flag.Arg(0)

	log, err := logger.NewStdLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return 2
	}
	defer log.Close()

	opts := []wordfreq.Option{
		wordfreq.WithPortsLogger(log),
		wordfreq.WithMinCount(*minCount),
		wordfreq.WithTopN(*top),
	}
	if *myopt {
		opts = append(opts, wordfreq.WithDigitFilter())
	}
	if *lowercase {
		opts = append(opts, wordfreq.WithCaseFolding())
	}
	if *optimized {
		opts = append(opts, wordfreq.WithOptimizedTokenizer())
	}
	if *parallel {
		opts = append(opts, wordfreq.WithParallel(0))
	}

	if *stopwordsOn {
		if *stopwordFile != "" {
			set, err := stopwords.NewFromFile(*stopwordFile)
			if err != nil {
				log.Error("Cannot load stopword file", "path", *stopwordFile, "error", err)
				return 2
			}
			opts = append(opts, wordfreq.WithStopwords(set))
		} else {
			// The fallback is an explicit, logged choice so a smaller list
			// never changes results silently.
			log.Warn("No stopword file configured, using built-in minimal list",
				"fix", "pass -stopword-file with a richer corpus",
			)
			opts = append(opts, wordfreq.WithBuiltinStopwords())
		}
	}

	if *lemmatize {
		if *lemmaDict == "" {
			log.Error("Lemmatization requested (-lemmatize) but no -lemma-dict given")
			return 2
		}
		dict, err := lemmatizer.NewFromFile(*lemmaDict)
		if err != nil {
			log.Error("Cannot load lemma dictionary", "path", *lemmaDict, "error", err)
			return 2
		}
		opts = append(opts, wordfreq.WithLemmatizer(dict))
	}

	if *stem {
		st, err := stemmer.NewSnowball(*language)
		if err != nil {
			log.Error("Stemming requested (-stem) but stemmer is unavailable", "language", *language, "error", err)
			return 2
		}
		opts = append(opts, wordfreq.WithStemmer(st))
	}

	counter, err := wordfreq.New(opts...)
	if err != nil {
		log.Error("Cannot construct pipeline", "error", err)
		return 2
	}

	var input io.Reader
	if inputPath == "-" {
		input = os.Stdin
	} else {
		f, err := os.Open(inputPath)
		if err != nil {
			log.Error("Cannot open input", "path", inputPath, "error", err)
			return 1
		}
		defer f.Close()
		input = f
	}

	report, err := counter.Count(context.Background(), input)
	if err != nil {
		log.Error("Processing failed", "error", err)
		return 1
	}

	for _, entry := range report.Entries {
		fmt.Printf("%s %d\n", entry.Token, entry.Count)
	}
	fmt.Fprintf(os.Stderr, "[stats] total_tokens=%d unique_tokens=%d\n",
		report.TotalTokens, report.UniqueTokens)
	return 0
}
