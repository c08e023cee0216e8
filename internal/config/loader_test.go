package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ausbeute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
reference:
  sheet: Referenz

daily:
  sheet: Tagesbericht
  dimension_column: Dim
  metrics:
    - Volumen_Ausgang
    - Ausschuss

output:
  filename: result.xlsx
  sheet: Summe

server:
  address: "127.0.0.1:9090"
  max_upload_mb: 8

logging:
  level: debug
  format: json
  output: stdout
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Referenz", cfg.Reference.Sheet)
	assert.Equal(t, "Tagesbericht", cfg.Daily.Sheet)
	assert.Equal(t, "Dim", cfg.Daily.DimensionColumn)
	assert.Equal(t, []string{"Volumen_Ausgang", "Ausschuss"}, cfg.Daily.Metrics)
	assert.Equal(t, "result.xlsx", cfg.Output.Filename)
	assert.Equal(t, "Summe", cfg.Output.Sheet)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address)
	assert.Equal(t, 8, cfg.Server.MaxUploadMB)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: warn
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, DefaultMetrics, cfg.Daily.Metrics)
	assert.Equal(t, "Dimension", cfg.Daily.DimensionColumn)
	assert.Equal(t, "Ergebnis", cfg.Output.Sheet)
	assert.Equal(t, 30, cfg.Server.ReadTimeoutSeconds)
}

func TestLoadWithEnvVars(t *testing.T) {
	t.Setenv("TEST_AUSBEUTE_OUT", "monat.xlsx")
	t.Setenv("TEST_AUSBEUTE_PORT", "7070")

	path := writeConfig(t, `
output:
  filename: ${TEST_AUSBEUTE_OUT}
server:
  address: ":$TEST_AUSBEUTE_PORT"
logging:
  output: ${TEST_AUSBEUTE_UNSET}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "monat.xlsx", cfg.Output.Filename)
	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, "${TEST_AUSBEUTE_UNSET}", cfg.Logging.Output, "unset vars stay untouched")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "daily: [unclosed")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ausbeute.yaml")

	t.Run("implicit missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadOrDefault(missing, false)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := LoadOrDefault(missing, true)
		assert.Error(t, err)
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		path := writeConfig(t, "output:\n  sheet: Monat\n")
		cfg, err := LoadOrDefault(path, false)
		require.NoError(t, err)
		assert.Equal(t, "Monat", cfg.Output.Sheet)
	})
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("daily.dimension_column", "Abmessung")
	v.Set("server.max_upload_mb", 4)

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "Abmessung", cfg.Daily.DimensionColumn)
	assert.Equal(t, 4, cfg.Server.MaxUploadMB)
	assert.Equal(t, DefaultMetrics, cfg.Daily.Metrics)
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("TEST_EXPAND", "value")

	tests := []struct {
		input    string
		expected string
	}{
		{"${TEST_EXPAND}", "value"},
		{"$TEST_EXPAND", "value"},
		{"prefix-${TEST_EXPAND}-suffix", "prefix-value-suffix"},
		{"no vars", "no vars"},
		{"${TEST_EXPAND_MISSING}", "${TEST_EXPAND_MISSING}"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandEnvVar(tt.input))
		})
	}
}
