package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnvWithWarnings_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	_, err := ValidateEnvWithWarnings(&Config{Environment: "dev"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnvWithWarnings_NoVersionIsFine(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "")

	warnings, err := ValidateEnvWithWarnings(&Config{Environment: "dev", LogLevel: "debug", LogFormat: "text"})

	require.NoError(t, err)
	assert.Empty(t, warnings, "debug logging in dev should not warn")
}

func TestValidateEnvWithWarnings_ProductionHints(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)

	warnings, err := ValidateEnvWithWarnings(&Config{Environment: "prod", LogLevel: "debug", LogFormat: "text"})

	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "LOG_LEVEL=debug")
	assert.Contains(t, warnings[1], "LOG_FORMAT=json")
}

func TestNewValidator_RegistersSampleRule(t *testing.T) {
	v := newValidator()

	type sampleHolder struct {
		Name string `validate:"sample"`
	}
	assert.NoError(t, v.Struct(sampleHolder{Name: "even"}))
	assert.Error(t, v.Struct(sampleHolder{Name: "unknown"}))
}
