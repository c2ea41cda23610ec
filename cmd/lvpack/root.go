// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvpack/internal/config"
	"github.com/spf13/cobra"
)

const appName = "lvpack"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *log.Logger

	in  io.Reader
	out io.Writer
	err io.Writer
}

// newRootCmd wires the command tree; streams are injected for tests.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, err: errOut}

	root := &cobra.Command{
		Use:   appName,
		Short: "Pack, unpack and inspect symmetric and lower-triangular matrices",
		Long: titleStyle.Render(appName) + subtitleStyle.Render(" - packed matrix storage tool") + `

Symmetric matrices are stored as the upper triangle in column-major order,
lower-triangular matrices as the lower triangle in row-major order. Both
need N(N+1)/2 values instead of N².

` + subtitleStyle.Render("Configuration:") + `
  defaults < TOML file (--config) < LVPACK_* environment < flags`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	def := config.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "TOML config file")
	pf.String("log-level", def.LogLevel, "log level: debug, info, warn, error, fatal")
	pf.Float64("epsilon", def.Epsilon, "symmetry tolerance when packing dense input")
	pf.String("format", def.Format, "envelope encoding: toml or json")
	pf.Bool("validate-nan-inf", def.ValidateNaNInf, "reject NaN and Inf cells")

	root.AddCommand(
		a.packCmd(),
		a.unpackCmd(),
		a.infoCmd(),
		a.identityCmd(),
	)

	return root
}

// init resolves configuration and the logger before any subcommand runs.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: a.cfgFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrConfigValue, err)
	}

	a.cfg = cfg
	a.logger = log.NewWithOptions(a.err, log.Options{Prefix: appName, Level: lvl})
	a.logger.Debug("configuration resolved",
		"file", a.cfgFile, "epsilon", cfg.Epsilon, "format", cfg.Format, "validate_nan_inf", cfg.ValidateNaNInf)

	return nil
}
