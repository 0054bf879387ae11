package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
		errMsg string
	}{
		{
			name:   "empty data dir",
			mutate: func(c *Config) { c.DataDir = "" },
			field:  "data_dir",
			errMsg: "cannot be empty",
		},
		{
			name:   "non http base url",
			mutate: func(c *Config) { c.API.BaseURL = "ftp://example.com" },
			field:  "api.base_url",
			errMsg: "scheme must be http or https",
		},
		{
			name:   "base url without host",
			mutate: func(c *Config) { c.API.BaseURL = "http://" },
			field:  "api.base_url",
			errMsg: "host is required",
		},
		{
			name:   "zero timeout",
			mutate: func(c *Config) { c.API.Timeout = 0 },
			field:  "api.timeout",
			errMsg: "must be positive",
		},
		{
			name:   "negative toast duration",
			mutate: func(c *Config) { c.Toast.Duration = -time.Second },
			field:  "toast.duration",
			errMsg: "cannot be negative",
		},
		{
			name:   "negative max toasts",
			mutate: func(c *Config) { c.Toast.MaxToasts = -1 },
			field:  "toast.max_toasts",
			errMsg: "cannot be negative",
		},
		{
			name:   "unknown theme",
			mutate: func(c *Config) { c.TUI.Theme = "neon" },
			field:  "tui.theme",
			errMsg: "unknown theme",
		},
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Debug.MetricsPort = 70000 },
			field:  "debug.metrics_port",
			errMsg: "between 0 and 65535",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.field, fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_ZeroToastDurationAllowed(t *testing.T) {
	cfg := validConfig(t)
	cfg.Toast.Duration = 0

	assert.NoError(t, cfg.Validate())
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)
	dir := t.TempDir()

	err := cfg.ValidateDeep(dir)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateDeep_MissingConfigFileIsFine(t *testing.T) {
	cfg := validConfig(t)

	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	cfg.DataDir = file

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Err.Error(), "not a directory")
}
