package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"required,oneof=debug info warn warning error"`
	LogFormat   string `validate:"required,oneof=json text"`
	Environment string `validate:"required,oneof=dev development staging prod production test"`
	ServiceName string `validate:"required,max=64"`
	Version     string `validate:"required"`
	SampleName  string `validate:"required,sample"`
	ReportOrder string `validate:"required,oneof=address input"`
	MetricsDump bool   // Write split metrics to stderr after the report
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: strings.ToLower(getEnv(EnvEnvironment, DefaultEnvironment)),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		SampleName:  strings.ToLower(getEnv(EnvSampleName, DefaultSampleName)),
		ReportOrder: strings.ToLower(getEnv(EnvReportOrder, DefaultReportOrder)),
	}

	dump, err := strconv.ParseBool(getEnv(EnvMetricsDump, "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvMetricsDump, err)
	}
	cfg.MetricsDump = dump

	// Validate already wraps domain.ErrInvalidConfig
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
