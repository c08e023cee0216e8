package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// reservedColumns are written by the exporter ahead of the metrics.
var reservedColumns = map[string]bool{
	"SortIndex":    true,
	"Dim1":         true,
	"Dim2":         true,
	"DimensionKey": true,
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateDaily()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateDaily() ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(c.Daily.DimensionColumn) == "" {
		errors = append(errors, ValidationError{
			Field:   "daily.dimension_column",
			Message: "dimension_column is required",
		})
	}

	if len(c.Daily.Metrics) == 0 {
		errors = append(errors, ValidationError{
			Field:   "daily.metrics",
			Message: "at least one metric column must be defined",
		})
	}

	seen := make(map[string]bool, len(c.Daily.Metrics))
	for i, name := range c.Daily.Metrics {
		field := fmt.Sprintf("daily.metrics[%d]", i)
		switch {
		case strings.TrimSpace(name) == "":
			errors = append(errors, ValidationError{Field: field, Message: "metric name is required"})
		case seen[name]:
			errors = append(errors, ValidationError{Field: field, Message: fmt.Sprintf("duplicate metric %q", name)})
		case reservedColumns[name] || name == c.Daily.DimensionColumn:
			errors = append(errors, ValidationError{Field: field, Message: fmt.Sprintf("%q is reserved", name)})
		}
		seen[name] = true
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	if c.Output.Filename == "" {
		errors = append(errors, ValidationError{
			Field:   "output.filename",
			Message: "filename is required",
		})
	} else if !strings.HasSuffix(strings.ToLower(c.Output.Filename), ".xlsx") {
		errors = append(errors, ValidationError{
			Field:   "output.filename",
			Message: "filename must end with .xlsx",
		})
	}

	// Excel limits sheet names to 31 characters and forbids a few symbols.
	switch {
	case c.Output.Sheet == "":
		errors = append(errors, ValidationError{
			Field:   "output.sheet",
			Message: "sheet name is required",
		})
	case len([]rune(c.Output.Sheet)) > 31:
		errors = append(errors, ValidationError{
			Field:   "output.sheet",
			Message: "sheet name cannot exceed 31 characters",
		})
	case strings.ContainsAny(c.Output.Sheet, `:\/?*[]`):
		errors = append(errors, ValidationError{
			Field:   "output.sheet",
			Message: `sheet name cannot contain any of : \ / ? * [ ]`,
		})
	}

	return errors
}

func (c *Config) validateServer() ValidationErrors {
	var errors ValidationErrors

	if c.Server.Address == "" {
		errors = append(errors, ValidationError{
			Field:   "server.address",
			Message: "address is required",
		})
	}

	if c.Server.MaxUploadMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "server.max_upload_mb",
			Message: "max_upload_mb must be positive",
		})
	}

	if c.Server.ReadTimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "server.read_timeout_seconds",
			Message: "read_timeout_seconds cannot be negative",
		})
	}

	if c.Server.WriteTimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "server.write_timeout_seconds",
			Message: "write_timeout_seconds cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
