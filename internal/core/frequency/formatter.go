package frequency

import (
	"sort"

	"github.com/baditaflorin/go_token_frequency/internal/core/domain"
)

// BuildReport converts an aggregation into a deterministically ordered
// report:
//
//  1. retain entries with count >= minCount (values below 1 mean no filter)
//  2. sort by count descending, then token ascending
//  3. keep the first topN entries when topN > 0
//
// TotalTokens and UniqueTokens always reflect the full aggregation, not the
// filtered or truncated entry list. Given the same aggregation and filters
// the output is byte-identical across runs.
func BuildReport(agg *Aggregator, minCount, topN int) domain.Report {
	report := domain.Report{
		TotalTokens:  agg.Total(),
		UniqueTokens: agg.Unique(),
	}

	entries := make([]domain.Entry, 0, len(agg.counts))
	for token, count := range agg.counts {
		if count >= minCount {
			entries = append(entries, domain.Entry{Token: token, Count: count})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}

	report.Entries = entries
	return report
}
