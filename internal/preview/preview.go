// Package preview renders an analysis result as a plain text table for the
// terminal.
package preview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/ausbeute/internal/analysis"
)

// Options control the rendering.
type Options struct {
	Color   bool // colour the header and warnings
	MaxRows int  // 0 renders every row
}

// Render writes result as an aligned table followed by the skipped-file
// warnings. Text columns are left aligned, numbers right aligned.
func Render(w io.Writer, result *analysis.Result, opts Options) error {
	header := result.Columns()
	cells := make([][]string, 0, len(result.Rows))

	rows := result.Rows
	truncated := 0
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		truncated = len(rows) - opts.MaxRows
		rows = rows[:opts.MaxRows]
	}

	for _, row := range rows {
		line := make([]string, 0, len(header))
		line = append(line, strconv.Itoa(row.SortIndex), row.Dim1, row.Dim2, row.DimensionKey)
		for _, v := range row.Metrics {
			line = append(line, FormatNumber(v))
		}
		cells = append(cells, line)
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, line := range cells {
		for i, c := range line {
			if cw := runewidth.StringWidth(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	headerLine := make([]string, len(header))
	for i, h := range header {
		headerLine[i] = runewidth.FillRight(h, widths[i])
	}
	head := strings.Join(headerLine, "  ")
	if opts.Color {
		head = color.New(color.FgCyan, color.OpBold).Sprint(head)
	}
	if _, err := fmt.Fprintln(w, head); err != nil {
		return err
	}

	sep := make([]string, len(header))
	for i := range header {
		sep[i] = strings.Repeat("-", widths[i])
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
		return err
	}

	for _, line := range cells {
		out := make([]string, len(line))
		for i, c := range line {
			// SortIndex and metrics are numeric
			if i == 0 || i >= 4 {
				out[i] = runewidth.FillLeft(c, widths[i])
			} else {
				out[i] = runewidth.FillRight(c, widths[i])
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(out, "  "), " ")); err != nil {
			return err
		}
	}

	if truncated > 0 {
		if _, err := fmt.Fprintf(w, "... %d more row(s)\n", truncated); err != nil {
			return err
		}
	}

	return RenderWarnings(w, result.Warnings, opts.Color)
}

// RenderWarnings lists the skipped daily files.
func RenderWarnings(w io.Writer, warnings []analysis.FileWarning, colored bool) error {
	if len(warnings) == 0 {
		return nil
	}

	title := fmt.Sprintf("\n%d daily file(s) skipped:", len(warnings))
	if colored {
		title = color.Yellow.Sprint(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	for _, warn := range warnings {
		if _, err := fmt.Fprintf(w, "  - %s: %v\n", warn.File, warn.Err); err != nil {
			return err
		}
	}
	return nil
}

// FormatNumber renders v without trailing zeros, e.g. 15, 2.5 or -0.125.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
