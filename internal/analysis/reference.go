package analysis

import (
	"fmt"

	"github.com/dbsmedya/ausbeute/internal/dimension"
	"github.com/dbsmedya/ausbeute/internal/types"
)

// ParseReference builds the reference rows from the first two columns of t.
// Fully blank rows are skipped and do not consume a SortIndex. Any value that
// cannot be normalized fails the whole table.
func ParseReference(t *types.Table) ([]ReferenceRow, error) {
	if t.Width() < len(ReferenceColumns) {
		return nil, &ReferenceError{
			File: t.Source,
			Err:  fmt.Errorf("expected at least %d columns, found %d", len(ReferenceColumns), t.Width()),
		}
	}

	rows := make([]ReferenceRow, 0, len(t.Rows))
	for i := range t.Rows {
		if t.IsBlankRow(i) {
			continue
		}

		raw1 := t.Cell(i, ReferenceColumns[0])
		raw2 := t.Cell(i, ReferenceColumns[1])

		dim1, err := dimension.Normalize(raw1)
		if err != nil {
			return nil, &ReferenceError{File: t.Source, Row: i + 2, Err: err}
		}
		dim2, err := dimension.Normalize(raw2)
		if err != nil {
			return nil, &ReferenceError{File: t.Source, Row: i + 2, Err: err}
		}

		rows = append(rows, ReferenceRow{
			SortIndex:    len(rows) + 1,
			Dim1Raw:      raw1,
			Dim2Raw:      raw2,
			Dim1:         dim1,
			Dim2:         dim2,
			DimensionKey: dimension.Join(dim1, dim2),
		})
	}

	return rows, nil
}
