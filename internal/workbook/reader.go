// Package workbook reads input spreadsheets into raw tables and writes the
// result spreadsheet, using excelize.
package workbook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/dbsmedya/ausbeute/internal/types"
)

// Opener returns a fresh reader for the workbook bytes.
type Opener func() (io.ReadCloser, error)

// Source is a workbook that is opened lazily and closed again as soon as its
// table has been read.
type Source struct {
	name  string
	sheet string
	open  Opener
}

// NewSource creates a Source for an arbitrary opener, e.g. an uploaded file.
// An empty sheet selects the first worksheet.
func NewSource(name, sheet string, open Opener) *Source {
	return &Source{name: name, sheet: sheet, open: open}
}

// NewFileSource creates a Source reading the workbook at path.
func NewFileSource(path, sheet string) *Source {
	return NewSource(filepath.Base(path), sheet, func() (io.ReadCloser, error) {
		return os.Open(path)
	})
}

// Name returns the display name of the workbook.
func (s *Source) Name() string {
	return s.name
}

// Table opens the workbook, reads the selected sheet and releases every
// handle before returning.
func (s *Source) Table() (*types.Table, error) {
	rc, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.name, err)
	}
	defer rc.Close()

	return ReadTable(rc, s.name, s.sheet)
}

// ReadTable reads one worksheet of the workbook in r. The first row becomes
// the header. Cell values are read raw so number formats cannot alter them.
func ReadTable(r io.Reader, name, sheet string) (*types.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook %s: %w", name, err)
	}
	defer f.Close()

	sheet, err = resolveSheet(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", name, err)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, name, err)
	}

	table := &types.Table{
		Source: name,
		Sheet:  sheet,
	}
	if len(rows) == 0 {
		return table, nil
	}
	table.Header = rows[0]
	table.Rows = rows[1:]
	return table, nil
}

// resolveSheet returns sheet if it exists, or the first sheet when sheet is empty.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook contains no sheets")
	}
	if sheet == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == sheet {
			return s, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found (available: %v)", sheet, sheets)
}
