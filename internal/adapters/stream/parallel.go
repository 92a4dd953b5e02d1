package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/baditaflorin/go_token_frequency/internal/core/frequency"
)

// MaxJobQueueSize limits the number of pending line batches.
const MaxJobQueueSize = 32

// processParallel distributes whole-line batches across a worker pool. Each
// worker aggregates into a private partial table; partials are merged by
// summing counts per key, which is safe because per-token updates are
// commutative increments. Ordering is established later by the formatter's
// deterministic sort, never here.
func (p *Processor) processParallel(ctx context.Context, reader io.Reader) (*frequency.Aggregator, error) {
	workers := p.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan *[]string, MaxJobQueueSize)
	partials := make([]*frequency.Aggregator, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		partials[i] = frequency.NewAggregator()
		wg.Add(1)
		go func(agg *frequency.Aggregator) {
			defer wg.Done()
			for batch := range jobs {
				for _, line := range *batch {
					p.consumeLine(line, agg)
				}
				p.batchPool.Put(batch)
			}
		}(partials[i])
	}

	scanErr := p.scanBatches(ctx, reader, jobs)
	close(jobs)
	wg.Wait()

	if scanErr != nil {
		return nil, scanErr
	}

	merged := frequency.NewAggregator()
	for _, partial := range partials {
		merged.Merge(partial)
	}

	p.logger.Debug("Processed input stream in parallel",
		"workers", workers,
		"total_tokens", merged.Total(),
		"unique_tokens", merged.Unique(),
	)
	return merged, nil
}

// scanBatches reads lines, groups them into batches and hands them to the
// workers. It owns the scanner; workers own the batches they receive.
func (p *Processor) scanBatches(ctx context.Context, reader io.Reader, jobs chan<- *[]string) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, initialScanBuffer), p.config.MaxLineSize)

	batch := p.batchPool.Get()
	lines := 0
	for scanner.Scan() {
		*batch = append(*batch, sanitizeLine(scanner.Text()))
		lines++

		if len(*batch) >= p.config.BatchSize {
			select {
			case jobs <- batch:
			case <-ctx.Done():
				p.batchPool.Put(batch)
				return ctx.Err()
			}
			batch = p.batchPool.Get()
		}

		if lines%ContextCheckFrequency == 0 {
			select {
			case <-ctx.Done():
				p.batchPool.Put(batch)
				return ctx.Err()
			default:
			}
		}
	}

	if err := scanner.Err(); err != nil {
		p.batchPool.Put(batch)
		return fmt.Errorf("read input: %w", err)
	}

	if len(*batch) > 0 {
		select {
		case jobs <- batch:
		case <-ctx.Done():
			p.batchPool.Put(batch)
			return ctx.Err()
		}
	} else {
		p.batchPool.Put(batch)
	}
	return nil
}
