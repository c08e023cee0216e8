package analysis

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingReference is returned when no reference workbook was supplied.
	ErrMissingReference = errors.New("no reference table supplied")
	// ErrMissingDaily is returned when no daily workbook was supplied.
	ErrMissingDaily = errors.New("no daily report files supplied")
	// ErrNoDailyData is returned when every daily workbook failed to parse.
	ErrNoDailyData = errors.New("none of the daily report files could be read")
	// ErrMissingDimensionColumn is returned for a daily table without the dimension column.
	ErrMissingDimensionColumn = errors.New("dimension column not found")
)

// ReferenceError reports a fatal problem with the reference table.
// Row is the 1-based worksheet row, or 0 when the error is not row specific.
type ReferenceError struct {
	File string
	Row  int
	Err  error
}

func (e *ReferenceError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("reference table %s, row %d: %v", e.File, e.Row, e.Err)
	}
	return fmt.Sprintf("reference table %s: %v", e.File, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// NoDailyDataError carries the per-file failures that left the run without
// any daily data. It matches ErrNoDailyData with errors.Is.
type NoDailyDataError struct {
	Warnings []FileWarning
}

func (e *NoDailyDataError) Error() string {
	if len(e.Warnings) == 0 {
		return ErrNoDailyData.Error()
	}
	msgs := make([]string, 0, len(e.Warnings))
	for _, w := range e.Warnings {
		msgs = append(msgs, w.Error())
	}
	return fmt.Sprintf("%s:\n  - %s", ErrNoDailyData, strings.Join(msgs, "\n  - "))
}

func (e *NoDailyDataError) Unwrap() error {
	return ErrNoDailyData
}
