package domain

// Entry is a single report line: a normalized token and its occurrence count.
type Entry struct {
	Token string
	Count int
}

// Report holds the outcome of a frequency run.
//
// Entries is ordered by count descending, then token ascending, and reflects
// the configured min-count and top-N post-filters. TotalTokens and
// UniqueTokens are computed over the full aggregation, before any filtering
// or truncation.
type Report struct {
	Entries      []Entry
	TotalTokens  int
	UniqueTokens int
}
