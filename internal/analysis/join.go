package analysis

import (
	"sort"
)

// Join left-joins agg onto reference. Every reference row yields exactly one
// result row, duplicates included; rows without a matching key carry zero
// metrics. The result is ordered by SortIndex.
func Join(reference []ReferenceRow, agg *Aggregation) []ResultRow {
	width := len(agg.Metrics())
	out := make([]ResultRow, 0, len(reference))

	for _, ref := range reference {
		metrics := make([]float64, width)
		if row, ok := agg.Get(ref.DimensionKey); ok {
			copy(metrics, row.Metrics)
		}
		out = append(out, ResultRow{
			SortIndex:    ref.SortIndex,
			Dim1:         ref.Dim1,
			Dim2:         ref.Dim2,
			DimensionKey: ref.DimensionKey,
			Metrics:      metrics,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortIndex < out[j].SortIndex
	})
	return out
}

// UnmatchedKeys returns the aggregated keys that no reference row asks for,
// in order of first appearance.
func UnmatchedKeys(reference []ReferenceRow, agg *Aggregation) []string {
	known := make(map[string]struct{}, len(reference))
	for _, ref := range reference {
		known[ref.DimensionKey] = struct{}{}
	}

	var missing []string
	for _, row := range agg.Rows() {
		if _, ok := known[row.DimensionKey]; !ok {
			missing = append(missing, row.DimensionKey)
		}
	}
	return missing
}

// Merge aggregates datasets and joins the sums onto reference.
func Merge(metrics []string, reference []ReferenceRow, datasets []DailyDataset) []ResultRow {
	return Join(reference, Aggregate(metrics, datasets))
}
