package analysis

import (
	"fmt"

	"github.com/dbsmedya/ausbeute/internal/types"
)

// DailyParseInfo describes data quality findings of one daily table.
type DailyParseInfo struct {
	MissingMetrics []string // metric columns absent from the header, read as 0
	NonNumeric     int      // non-empty metric cells that were not numeric, read as 0
	BlankDimension int      // rows skipped because the dimension cell was empty
}

// ParseDaily converts a daily table into a dataset. The dimension cell is
// trimmed and used as the key as-is. Metric cells that are empty or not
// numeric count as 0.
func ParseDaily(t *types.Table, dimensionColumn string, metrics []string) (DailyDataset, DailyParseInfo, error) {
	var info DailyParseInfo

	dimIdx := t.ColumnIndex(dimensionColumn)
	if dimIdx < 0 {
		return DailyDataset{}, info, fmt.Errorf("%w: %q", ErrMissingDimensionColumn, dimensionColumn)
	}

	metricIdx := make([]int, len(metrics))
	for i, name := range metrics {
		metricIdx[i] = t.ColumnIndex(name)
		if metricIdx[i] < 0 {
			info.MissingMetrics = append(info.MissingMetrics, name)
		}
	}

	dataset := DailyDataset{
		Name:    t.Source,
		Records: make([]DailyRecord, 0, len(t.Rows)),
	}

	for row := range t.Rows {
		key := t.Cell(row, dimIdx)
		if key == "" {
			if !t.IsBlankRow(row) {
				info.BlankDimension++
			}
			continue
		}

		values := make([]float64, len(metrics))
		for i, col := range metricIdx {
			if col < 0 {
				continue
			}
			cell := t.Cell(row, col)
			v, ok := types.ToFloat64(cell)
			if !ok && cell != "" {
				info.NonNumeric++
			}
			values[i] = v
		}

		dataset.Records = append(dataset.Records, DailyRecord{
			DimensionKey: key,
			Metrics:      values,
		})
	}

	return dataset, info, nil
}
