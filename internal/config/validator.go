package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/osse101/StoneSplit_Go/internal/domain"
	"github.com/osse101/StoneSplit_Go/internal/sample"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("sample", validateSampleName); err != nil {
		panic(fmt.Sprintf("config: register sample validation: %v", err))
	}
	return v
}

// validateSampleName accepts only datasets the sample package knows about
func validateSampleName(fl validator.FieldLevel) bool {
	return sample.Exists(fl.Field().String())
}

// Validate checks struct tags and flattens failures into one readable error
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	sort.Strings(msgs)

	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "sample":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, strings.Join(sample.Names(), " "), e.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// ValidateEnvWithWarnings checks the env schema version and returns warnings
// for settings that work but are probably unintended
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if schemaVersion := os.Getenv(EnvSchemaVersion); schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return nil, fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated", EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var warnings []string

	if !cfg.IsDevelopment() && cfg.LogLevel == "debug" {
		warnings = append(warnings, fmt.Sprintf("LOG_LEVEL=debug in %s environment is very verbose", cfg.Environment))
	}

	if (cfg.Environment == "prod" || cfg.Environment == "production") && cfg.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT=json is recommended in production")
	}

	return warnings, nil
}
