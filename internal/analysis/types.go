// Package analysis merges daily yield reports onto a reference dimension list.
//
// A run normalizes the reference dimensions into keys, sums the daily
// metrics per key, left-joins the sums onto the reference rows and restores
// the reference order. Every reference row appears exactly once in the
// result; rows without daily activity carry zero metrics.
package analysis

import (
	"time"

	"github.com/dbsmedya/ausbeute/internal/types"
)

// ReferenceColumns documents the positional contract of the reference sheet:
// column A holds Dim1 and column B holds Dim2. Header names are ignored.
var ReferenceColumns = [2]int{0, 1}

// Source yields the raw table of one input workbook. Implementations open
// and release the underlying file inside Table.
type Source interface {
	Name() string
	Table() (*types.Table, error)
}

// ReferenceRow is one entry of the reference dimension list.
type ReferenceRow struct {
	SortIndex    int    // 1-based position among the reference data rows
	Dim1Raw      string // cell text as read
	Dim2Raw      string
	Dim1         string // normalized integer text
	Dim2         string
	DimensionKey string
}

// DailyRecord is one row of a daily report.
type DailyRecord struct {
	DimensionKey string
	Metrics      []float64 // aligned with the metric columns of the run
}

// DailyDataset holds the records of one daily report file.
type DailyDataset struct {
	Name    string
	Records []DailyRecord
}

// AggregatedRow holds the metric sums of one dimension key.
type AggregatedRow struct {
	DimensionKey string
	Records      int
	Metrics      []float64
}

// ResultRow is one output row per reference row.
type ResultRow struct {
	SortIndex    int
	Dim1         string
	Dim2         string
	DimensionKey string
	Metrics      []float64
}

// FileWarning reports a daily file that was skipped.
type FileWarning struct {
	File string
	Err  error
}

func (w FileWarning) Error() string {
	return w.File + ": " + w.Err.Error()
}

func (w FileWarning) Unwrap() error {
	return w.Err
}

// Stats summarizes a run.
type Stats struct {
	ReferenceRows  int
	DailyFiles     int
	DailyFilesUsed int
	DailyRecords   int
	DistinctKeys   int
	MatchedRows    int      // reference rows with daily activity
	UnmatchedKeys  []string // daily keys absent from the reference, dropped by the join
	Duration       time.Duration
}

// Result is the outcome of a run.
type Result struct {
	RunID    string
	Metrics  []string
	Rows     []ResultRow
	Warnings []FileWarning
	Stats    Stats
}

// Columns returns the output header: SortIndex, Dim1, Dim2, DimensionKey
// followed by the metric columns.
func (r *Result) Columns() []string {
	cols := make([]string, 0, 4+len(r.Metrics))
	cols = append(cols, "SortIndex", "Dim1", "Dim2", "DimensionKey")
	return append(cols, r.Metrics...)
}

// Metric returns the value of the named metric in row, or 0 if the metric
// is not part of the run.
func (r *Result) Metric(row ResultRow, name string) float64 {
	for i, m := range r.Metrics {
		if m == name && i < len(row.Metrics) {
			return row.Metrics[i]
		}
	}
	return 0
}
