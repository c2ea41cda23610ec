// SPDX-License-Identifier: MIT

// Package config resolves the lvpack CLI configuration from defaults, an
// optional TOML file, LVPACK_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/katalvlaran/lvpack/packed"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override (LVPACK_EPSILON, ...).
	EnvPrefix = "LVPACK"

	// FormatTOML and FormatJSON name the envelope encodings.
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Keys understood by Load; flag names use dashes instead of underscores.
const (
	KeyLogLevel       = "log_level"
	KeyEpsilon        = "epsilon"
	KeyFormat         = "format"
	KeyValidateNaNInf = "validate_nan_inf"
)

// Sentinel errors.
var (
	ErrConfigFile  = errors.New("config: cannot read config file")
	ErrConfigValue = errors.New("config: invalid value")
)

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel       string  `mapstructure:"log_level" toml:"log_level"`
	Epsilon        float64 `mapstructure:"epsilon" toml:"epsilon"`
	Format         string  `mapstructure:"format" toml:"format"`
	ValidateNaNInf bool    `mapstructure:"validate_nan_inf" toml:"validate_nan_inf"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:       "info",
		Epsilon:        packed.DefaultEpsilon,
		Format:         FormatTOML,
		ValidateNaNInf: packed.DefaultValidateNaNInf,
	}
}

// LoadOptions selects the sources Load consults. Both fields are optional.
type LoadOptions struct {
	// ConfigFilePath is a TOML file; empty means defaults and environment only.
	ConfigFilePath string
	// Flags binds command-line overrides; only flags the user changed win
	// over the file and environment.
	Flags *pflag.FlagSet
}

// Load resolves a Config. Precedence: flags > env > file > defaults.
// Errors: ErrConfigFile (unreadable or malformed file), ErrConfigValue.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyEpsilon, defaults.Epsilon)
	v.SetDefault(KeyFormat, defaults.Format)
	v.SetDefault(KeyValidateNaNInf, defaults.ValidateNaNInf)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		if err := loadTOMLIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, err
		}
	}

	if opts.Flags != nil {
		for _, key := range []string{KeyLogLevel, KeyEpsilon, KeyFormat, KeyValidateNaNInf} {
			f := opts.Flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %q: %w", f.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValue, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadTOMLIntoViper decodes a TOML file with go-toml and merges it as a map,
// so unknown keys are kept by viper and ignored by Unmarshal.
func loadTOMLIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	var m map[string]any
	if err = toml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigFile, path, err)
	}
	if err = v.MergeConfigMap(m); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigFile, path, err)
	}

	return nil
}

// Validate checks every field. Errors: ErrConfigValue.
func (c Config) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("%w: log_level %q (want one of %s)", ErrConfigValue, c.LogLevel, strings.Join(logLevels, ", "))
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon %v must be finite and non-negative", ErrConfigValue, c.Epsilon)
	}
	if c.Format != FormatTOML && c.Format != FormatJSON {
		return fmt.Errorf("%w: format %q (want toml or json)", ErrConfigValue, c.Format)
	}

	return nil
}

// PackedOptions translates the numeric policy into packed constructor options.
// Call only on a validated Config: WithEpsilon panics on a bad tolerance.
func (c Config) PackedOptions() []packed.Option {
	opts := []packed.Option{packed.WithEpsilon(c.Epsilon)}
	if !c.ValidateNaNInf {
		opts = append(opts, packed.WithNoValidateNaNInf())
	}

	return opts
}
