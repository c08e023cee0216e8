package cmd

import (
	"errors"
	"fmt"

	"github.com/dbsmedya/ausbeute/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Validate checks the configuration file and reports every problem found.

Checks performed:
  - Configuration syntax
  - Dimension column and metric columns (non-empty, unique, not reserved)
  - Output file name and sheet name
  - Server address, upload limit and timeouts
  - Logging level, format and output

Example:
  ausbeute validate --config ausbeute.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.LoadOrDefault(configFile, configExplicit())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.OutputSheet)

	cmd.Printf("=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n", configFile)
	cmd.Printf("Metric columns: %d\n\n", len(cfg.Daily.Metrics))

	if err := cfg.Validate(); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				cmd.Printf("❌ %s\n", e.Error())
			}
		} else {
			cmd.Printf("❌ %v\n", err)
		}
		return fmt.Errorf("validation failed")
	}

	cmd.Println("✅ Configuration is valid")
	return nil
}
