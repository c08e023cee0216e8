// Package config provides configuration structures and loading for ausbeute.
package config

// Default metric columns summed per dimension. Names are case-sensitive and
// must match the daily report headers exactly.
var DefaultMetrics = []string{
	"Volumen_Ausgang",
	"Brutto_Volumen",
	"Brutto_Ausschuss",
	"Netto_Volumen",
	"Brutto_Ausbeute",
	"Netto_Ausbeute",
	"CE",
	"SF",
	"SI",
	"IND",
	"NSI",
	"Q_V",
	"Ausschuss",
}

// Config represents the complete application configuration.
type Config struct {
	Reference ReferenceConfig `yaml:"reference" mapstructure:"reference"`
	Daily     DailyConfig     `yaml:"daily" mapstructure:"daily"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// ReferenceConfig describes how the reference workbook is read.
// Dim1 and Dim2 are always taken from the first two columns of the sheet.
type ReferenceConfig struct {
	Sheet string `yaml:"sheet" mapstructure:"sheet"` // empty selects the first sheet
}

// DailyConfig describes the layout of the daily report workbooks.
type DailyConfig struct {
	Sheet           string   `yaml:"sheet" mapstructure:"sheet"`
	DimensionColumn string   `yaml:"dimension_column" mapstructure:"dimension_column"`
	Metrics         []string `yaml:"metrics" mapstructure:"metrics"`
}

// OutputConfig represents the result workbook settings.
type OutputConfig struct {
	Filename string `yaml:"filename" mapstructure:"filename"`
	Sheet    string `yaml:"sheet" mapstructure:"sheet"`
}

// ServerConfig represents the upload service settings.
type ServerConfig struct {
	Address             string `yaml:"address" mapstructure:"address"`
	MaxUploadMB         int    `yaml:"max_upload_mb" mapstructure:"max_upload_mb"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	metrics := make([]string, len(DefaultMetrics))
	copy(metrics, DefaultMetrics)

	return &Config{
		Daily: DailyConfig{
			DimensionColumn: "Dimension",
			Metrics:         metrics,
		},
		Output: OutputConfig{
			Filename: "Ausbeuteanalyse_Ergebnis.xlsx",
			Sheet:    "Ergebnis",
		},
		Server: ServerConfig{
			Address:             ":8080",
			MaxUploadMB:         32,
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// MaxUploadBytes returns the multipart size limit in bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}
