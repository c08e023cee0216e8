package cmd

import (
	"fmt"
	"os"

	"github.com/dbsmedya/ausbeute/internal/config"
	"github.com/dbsmedya/ausbeute/internal/logger"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile     string
	logLevel    string
	logFormat   string
	outputSheet string
)

var rootCmd = &cobra.Command{
	Use:   "ausbeute",
	Short: "Yield analysis from daily production reports",
	Long: `Ausbeute merges daily production reports into a yield analysis.

Every daily report row is keyed by its dimension (e.g. "75x75"), the metric
columns are summed per dimension over all reports, and the sums are joined
onto the reference list of dimensions. Every reference row appears in the
result, in reference order, with zeros where nothing was produced.

The result is written as an Excel workbook, either from the command line
(run) or through the HTTP upload service (serve).`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "ausbeute.yaml",
		"Path to configuration file (defaults apply when the default file is absent)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Output overrides
	rootCmd.PersistentFlags().StringVar(&outputSheet, "output-sheet", "",
		"Override the result sheet name")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel    string
	LogFormat   string
	OutputSheet string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		OutputSheet: outputSheet,
	}
}

// configExplicit reports whether --config was given on the command line.
func configExplicit() bool {
	f := rootCmd.PersistentFlags().Lookup("config")
	return f != nil && f.Changed
}

// loadConfig loads, overrides and validates the configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(GetConfigFile(), configExplicit())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.OutputSheet)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger for a command.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}
