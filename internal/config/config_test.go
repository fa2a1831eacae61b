package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Doors)
	assert.Equal(t, 2, cfg.LeftClosed)
	assert.Equal(t, 1000, cfg.Trials)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MONTYHALL_DOORS", "10")
	t.Setenv("MONTYHALL_TRIALS", "250")
	t.Setenv("MONTYHALL_SEED", "42")
	t.Setenv("MONTYHALL_FORMAT", "yaml")
	t.Setenv("MONTYHALL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Doors)
	assert.Equal(t, 2, cfg.LeftClosed)
	assert.Equal(t, 250, cfg.Trials)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadBadEnvInteger(t *testing.T) {
	t.Setenv("MONTYHALL_TRIALS", "many")
	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"negative trials", func(c *Config) { c.Trials = -1 }, "trials must be >= 0"},
		{"negative workers", func(c *Config) { c.Workers = -2 }, "workers must be >= 0"},
		{"unknown format", func(c *Config) { c.Format = "xml" }, "format must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(&cfg)
			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
