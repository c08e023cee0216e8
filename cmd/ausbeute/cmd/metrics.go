package cmd

import (
	"github.com/dbsmedya/ausbeute/internal/analysis"
	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List the metric columns and the result layout",
	Long: `Metrics displays the daily report layout the analysis expects and the
columns of the result workbook, in output order.

Example:
  ausbeute metrics --config ausbeute.yaml`,
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	refSheet := cfg.Reference.Sheet
	if refSheet == "" {
		refSheet = "(first sheet)"
	}
	dailySheet := cfg.Daily.Sheet
	if dailySheet == "" {
		dailySheet = "(first sheet)"
	}

	cmd.Printf("Reference workbook:\n")
	cmd.Printf("   Sheet:            %s\n", refSheet)
	cmd.Printf("   Columns:          first two columns (Dim1, Dim2)\n\n")

	cmd.Printf("Daily report workbooks:\n")
	cmd.Printf("   Sheet:            %s\n", dailySheet)
	cmd.Printf("   Dimension column: %s\n", cfg.Daily.DimensionColumn)
	cmd.Printf("   Metric columns:   %d\n", len(cfg.Daily.Metrics))
	for i, m := range cfg.Daily.Metrics {
		cmd.Printf("      %2d. %s\n", i+1, m)
	}

	result := &analysis.Result{Metrics: cfg.Daily.Metrics}
	cmd.Printf("\nResult workbook:\n")
	cmd.Printf("   File:             %s\n", cfg.Output.Filename)
	cmd.Printf("   Sheet:            %s\n", cfg.Output.Sheet)
	cmd.Printf("   Columns:\n")
	for i, c := range result.Columns() {
		cmd.Printf("      %2d. %s\n", i+1, c)
	}

	cmd.Printf("\nTotal: %d metric(s)\n", len(cfg.Daily.Metrics))
	return nil
}
