package frequency

// Aggregator maintains a running count per distinct normalized token.
//
// Updates are O(1) amortized and commutative (count increments only), so
// partial aggregations built from independent chunks of the same input can
// be combined with Merge without any reordering concerns. Ordering is
// established once, by the report formatter.
type Aggregator struct {
	counts map[string]int
	total  int
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{counts: make(map[string]int)}
}

// Add records one occurrence of the given token.
func (a *Aggregator) Add(token string) {
	a.counts[token]++
	a.total++
}

// Merge folds the counts of another aggregator into this one by summing
// per key. The other aggregator is left untouched.
func (a *Aggregator) Merge(other *Aggregator) {
	for token, count := range other.counts {
		a.counts[token] += count
	}
	a.total += other.total
}

// Count returns the current count for a token, zero if absent.
func (a *Aggregator) Count(token string) int {
	return a.counts[token]
}

// Total returns the number of occurrences recorded, i.e. the sum of all
// counts in the table.
func (a *Aggregator) Total() int {
	return a.total
}

// Unique returns the number of distinct tokens in the table.
func (a *Aggregator) Unique() int {
	return len(a.counts)
}
