package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samdwyer/dungeonleap/internal/logging"
	"github.com/samdwyer/dungeonleap/internal/presets"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "generation.cell_count")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidFormats returns the accepted log formats
func ValidFormats() []string {
	return []string{logging.FormatText, logging.FormatJSON}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateGeneration()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateTelemetry()...)

	return errors
}

func (c *Config) validateGeneration() []ValidationError {
	var errors []ValidationError

	if err := c.Generation.Params().Validate(); err != nil {
		errors = append(errors, ValidationError{
			Field:   "generation",
			Value:   c.Generation.Params(),
			Message: err.Error(),
		})
	}

	if c.Generation.Preset != "" {
		registry, err := presets.LoadRegistry()
		if err != nil {
			errors = append(errors, ValidationError{
				Field:   "generation.preset",
				Value:   c.Generation.Preset,
				Message: err.Error(),
			})
		} else if registry.GetByID(c.Generation.Preset) == nil {
			errors = append(errors, ValidationError{
				Field:   "generation.preset",
				Value:   c.Generation.Preset,
				Message: "unknown preset",
			})
		}
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(logging.ValidLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logging.ValidLevels(), ", ")),
		})
	}

	if !slices.Contains(ValidFormats(), strings.ToLower(c.Logging.Format)) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidFormats(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateTelemetry() []ValidationError {
	var errors []ValidationError

	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		errors = append(errors, ValidationError{
			Field:   "telemetry.endpoint",
			Value:   c.Telemetry.Endpoint,
			Message: "required when telemetry is enabled",
		})
	}

	return errors
}
