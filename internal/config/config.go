// Package config resolves run settings from built-in defaults and
// MONTYHALL_* environment variables. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "MONTYHALL_"

var ErrInvalidConfig = errors.New("invalid config")

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config is the resolved run configuration.
type Config struct {
	Doors      int    `koanf:"doors"`
	LeftClosed int    `koanf:"leftclosed"`
	Trials     int    `koanf:"trials"`
	Seed       uint64 `koanf:"seed"`    // 0 means pick one at random
	Workers    int    `koanf:"workers"` // <= 1 runs sequentially
	Format     string `koanf:"format"`
	LogLevel   string `koanf:"log_level"`
}

// Defaults mirror the classic game: 3 doors, 2 left closed, 1000 trials.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"doors":      3,
		"leftclosed": 2,
		"trials":     1000,
		"seed":       0,
		"workers":    1,
		"format":     FormatText,
		"log_level":  "info",
	}
}

// Load merges defaults with the environment, e.g. MONTYHALL_TRIALS=5000,
// MONTYHALL_LOG_LEVEL=debug.
func Load() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return Config{}, err
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Validate checks the settings that are not door parameters; those are
// checked by montyhall.Params.Validate.
func (c Config) Validate() error {
	var errs []string

	if c.Trials < 0 {
		errs = append(errs, "trials must be >= 0")
	}
	if c.Workers < 0 {
		errs = append(errs, "workers must be >= 0")
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		errs = append(errs, fmt.Sprintf("format must be one of: %s, %s (got %q)", FormatText, FormatYAML, c.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
