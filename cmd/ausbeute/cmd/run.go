package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dbsmedya/ausbeute/internal/analysis"
	"github.com/dbsmedya/ausbeute/internal/preview"
	"github.com/dbsmedya/ausbeute/internal/workbook"
	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	runReference string
	runDaily     []string
	runOutput    string
	runPreview   bool
	runMaxRows   int
	runNoColor   bool
)

var runCmd = &cobra.Command{
	Use:   "run [daily.xlsx ...]",
	Short: "Run the yield analysis on local workbooks",
	Long: `Run reads the reference workbook and every daily report, sums the metric
columns per dimension and writes the result workbook.

Daily reports may be given with --daily (repeatable) or as positional
arguments. A daily report that cannot be read is skipped with a warning;
the run fails only when none of them can be read.

Example:
  ausbeute run -r referenz.xlsx -d tag01.xlsx -d tag02.xlsx -o ergebnis.xlsx
  ausbeute run -r referenz.xlsx reports/*.xlsx --preview`,
	RunE: runAnalysis,
}

func init() {
	runCmd.Flags().StringVarP(&runReference, "reference", "r", "",
		"Reference workbook with Dim1 and Dim2 in the first two columns")
	runCmd.Flags().StringSliceVarP(&runDaily, "daily", "d", nil,
		"Daily report workbook (repeatable)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "",
		"Result workbook path (default: output.filename from config)")
	runCmd.Flags().BoolVar(&runPreview, "preview", false,
		"Print the result table to stdout")
	runCmd.Flags().IntVar(&runMaxRows, "max-rows", 0,
		"Limit the preview to this many rows (0 prints all)")
	runCmd.Flags().BoolVar(&runNoColor, "no-color", false,
		"Disable coloured output")

	rootCmd.AddCommand(runCmd)
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	out := cmd.OutOrStdout()
	colored := !runNoColor && color.SupportColor()

	var reference analysis.Source
	if runReference != "" {
		reference = workbook.NewFileSource(runReference, cfg.Reference.Sheet)
	}

	dailyPaths := append(append([]string{}, runDaily...), args...)
	daily := make([]analysis.Source, 0, len(dailyPaths))
	for _, p := range dailyPaths {
		daily = append(daily, workbook.NewFileSource(p, cfg.Daily.Sheet))
	}

	result, err := analysis.NewPipeline(cfg, log).Run(reference, daily)
	if err != nil {
		var noData *analysis.NoDailyDataError
		switch {
		case errors.Is(err, analysis.ErrMissingReference):
			return fmt.Errorf("%w (use --reference)", err)
		case errors.Is(err, analysis.ErrMissingDaily):
			return fmt.Errorf("%w (use --daily or pass files as arguments)", err)
		case errors.As(err, &noData):
			if werr := preview.RenderWarnings(out, noData.Warnings, colored); werr != nil {
				return werr
			}
			return analysis.ErrNoDailyData
		}
		return fmt.Errorf("analysis failed: %w", err)
	}

	outputPath := runOutput
	if outputPath == "" {
		outputPath = cfg.Output.Filename
	}

	buf, err := workbook.Export(result, cfg.Output.Sheet)
	if err != nil {
		return fmt.Errorf("failed to build result workbook: %w", err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	if runPreview {
		if err := preview.Render(out, result, preview.Options{Color: colored, MaxRows: runMaxRows}); err != nil {
			return err
		}
		fmt.Fprintln(out)
	} else if err := preview.RenderWarnings(out, result.Warnings, colored); err != nil {
		return err
	}

	printSummary(out, result, outputPath, colored)
	return nil
}

func printSummary(w io.Writer, result *analysis.Result, outputPath string, colored bool) {
	status := "=== Analysis Complete ==="
	if colored {
		status = color.Green.Sprint(status)
	}

	fmt.Fprintf(w, "\n%s\n", status)
	fmt.Fprintf(w, "Run: %s\n", result.RunID)
	fmt.Fprintf(w, "Duration: %s\n", result.Stats.Duration)
	fmt.Fprintf(w, "Reference rows: %d\n", result.Stats.ReferenceRows)
	fmt.Fprintf(w, "Daily files: %d read, %d skipped\n",
		result.Stats.DailyFilesUsed, len(result.Warnings))
	fmt.Fprintf(w, "Daily records: %d (%d distinct dimensions)\n",
		result.Stats.DailyRecords, result.Stats.DistinctKeys)
	fmt.Fprintf(w, "Matched rows: %d\n", result.Stats.MatchedRows)
	if n := len(result.Stats.UnmatchedKeys); n > 0 {
		fmt.Fprintf(w, "Dimensions without reference row: %d\n", n)
	}
	fmt.Fprintf(w, "Written: %s\n", outputPath)
}
