// SPDX-License-Identifier: MIT

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvpack/internal/config"
	"github.com/katalvlaran/lvpack/packed"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvpack.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), *cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
log_level = "debug"
epsilon = 1e-9
format = "json"
validate_nan_inf = false
unrelated = "ignored"
`)
	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: path})
	require.NoError(t, err)
	require.Equal(t, config.Config{LogLevel: "debug", Epsilon: 1e-9, Format: "json", ValidateNaNInf: false}, *cfg)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, "format = \"json\"\nepsilon = 0.5\n")
	t.Setenv("LVPACK_EPSILON", "0.25")
	t.Setenv("LVPACK_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "info", "")
	fs.Float64("epsilon", 0, "")
	fs.String("format", "toml", "")
	require.NoError(t, fs.Parse([]string{"--log-level=error"}))

	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: path, Flags: fs})
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel) // flag beats env
	require.Equal(t, 0.25, cfg.Epsilon)     // env beats file
	require.Equal(t, "json", cfg.Format)    // file beats the untouched flag default
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(config.LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "missing.toml")})
	require.ErrorIs(t, err, config.ErrConfigFile)

	_, err = config.Load(config.LoadOptions{ConfigFilePath: writeFile(t, "epsilon = ")})
	require.ErrorIs(t, err, config.ErrConfigFile)

	_, err = config.Load(config.LoadOptions{ConfigFilePath: writeFile(t, "format = \"yaml\"")})
	require.ErrorIs(t, err, config.ErrConfigValue)

	t.Setenv("LVPACK_EPSILON", "-1")
	_, err = config.Load(config.LoadOptions{})
	require.ErrorIs(t, err, config.ErrConfigValue)
}

func TestValidate(t *testing.T) {
	good := config.DefaultConfig()
	require.NoError(t, good.Validate())

	bad := good
	bad.LogLevel = "chatty"
	require.ErrorIs(t, bad.Validate(), config.ErrConfigValue)

	bad = good
	bad.LogLevel = "DEBUG"
	require.NoError(t, bad.Validate())
}

func TestPackedOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Epsilon = 1e-6
	cfg.ValidateNaNInf = false

	// tolerance reaches the validating constructor
	s, err := packed.NewSymmetricFrom2D([][]float64{{1, 2}, {2 + 1e-9, 1}}, cfg.PackedOptions()...)
	require.NoError(t, err)
	// NaN policy is off
	require.NoError(t, s.Set(0, 0, math.NaN()))
}
