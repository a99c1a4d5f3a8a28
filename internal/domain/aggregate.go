package domain

import "sort"

// Aggregate merges per-source entry batches into one table ordered by start
// time ascending. The sort is stable, so entries with equal start times keep
// their ingestion order. No deduplication or conflict resolution is applied;
// overlapping periods from different sources stay as separate rows. Batches
// may arrive in any order since the result is sorted explicitly.
func Aggregate(batches ...[]Entry) []Entry {
	var total int
	for _, b := range batches {
		total += len(b)
	}

	merged := make([]Entry, 0, total)
	for _, b := range batches {
		merged = append(merged, b...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Start.Before(merged[j].Start)
	})
	return merged
}
