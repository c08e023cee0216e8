package analysis

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Aggregation holds the metric sums per dimension key in order of first
// appearance across the datasets.
type Aggregation struct {
	metrics []string
	rows    *orderedmap.OrderedMap[string, *AggregatedRow]
}

// Aggregate groups every record of datasets by DimensionKey (exact match)
// and sums each metric. The result does not depend on how records are split
// across datasets.
func Aggregate(metrics []string, datasets []DailyDataset) *Aggregation {
	agg := &Aggregation{
		metrics: metrics,
		rows:    orderedmap.NewOrderedMap[string, *AggregatedRow](),
	}

	for _, ds := range datasets {
		for _, rec := range ds.Records {
			row, ok := agg.rows.Get(rec.DimensionKey)
			if !ok {
				row = &AggregatedRow{
					DimensionKey: rec.DimensionKey,
					Metrics:      make([]float64, len(metrics)),
				}
				agg.rows.Set(rec.DimensionKey, row)
			}
			row.Records++
			for i := range row.Metrics {
				if i < len(rec.Metrics) {
					row.Metrics[i] += rec.Metrics[i]
				}
			}
		}
	}

	return agg
}

// Metrics returns the metric column names the sums are aligned with.
func (a *Aggregation) Metrics() []string {
	return a.metrics
}

// Len returns the number of distinct keys.
func (a *Aggregation) Len() int {
	return a.rows.Len()
}

// Get returns the sums for key.
func (a *Aggregation) Get(key string) (*AggregatedRow, bool) {
	return a.rows.Get(key)
}

// Rows returns the aggregated rows in order of first appearance.
func (a *Aggregation) Rows() []AggregatedRow {
	out := make([]AggregatedRow, 0, a.rows.Len())
	for el := a.rows.Front(); el != nil; el = el.Next() {
		out = append(out, *el.Value)
	}
	return out
}
