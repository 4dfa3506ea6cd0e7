package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numcompare/core/tolerance"
)

// TestLoadConfigDefaults verifies the built-in defaults with no
// environment overrides.
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "numeric", cfg.Input.Format)
	assert.Equal(t, "exact", cfg.Tolerance.Mode)
	assert.Zero(t, cfg.Tolerance.AbsoluteEpsilon)
	assert.Zero(t, cfg.Tolerance.RelativeEpsilon)
	assert.Equal(t, 20, cfg.Report.MaxFindings)
	assert.False(t, cfg.Report.Diff)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

// TestLoadConfigEnvOverride verifies that environment variables map onto
// the nested config keys.
func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("INPUT_FORMAT", "lines")
	t.Setenv("TOLERANCE_MODE", "absolute")
	t.Setenv("TOLERANCE_ABSOLUTE_EPSILON", "1e-6")
	t.Setenv("REPORT_MAX_FINDINGS", "5")
	t.Setenv("REPORT_DIFF", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "lines", cfg.Input.Format)
	assert.Equal(t, "absolute", cfg.Tolerance.Mode)
	assert.Equal(t, 1e-6, cfg.Tolerance.AbsoluteEpsilon)
	assert.Equal(t, 5, cfg.Report.MaxFindings)
	assert.True(t, cfg.Report.Diff)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestConfigValidate verifies the cross-field rules enforced before a run
// starts.
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"absolute on numeric", func(c *Config) {
			c.Tolerance.Mode = "absolute"
			c.Tolerance.AbsoluteEpsilon = 1e-9
		}, false},
		{"exact on lines", func(c *Config) { c.Input.Format = "lines" }, false},
		{"unknown format", func(c *Config) { c.Input.Format = "xml" }, true},
		{"unknown mode", func(c *Config) { c.Tolerance.Mode = "fuzzy" }, true},
		{"negative epsilon", func(c *Config) {
			c.Tolerance.Mode = "absolute"
			c.Tolerance.AbsoluteEpsilon = -1
		}, true},
		{"tolerance on text input", func(c *Config) {
			c.Input.Format = "tokens"
			c.Tolerance.Mode = "relative"
			c.Tolerance.RelativeEpsilon = 1e-6
		}, true},
		{"negative findings cap", func(c *Config) { c.Report.MaxFindings = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(".")
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var cerr *tolerance.ConfigError
			require.ErrorAs(t, err, &cerr)
		})
	}
}
