// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpack/internal/config"
	"github.com/katalvlaran/lvpack/matrix"
	"github.com/katalvlaran/lvpack/packed"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// ErrEmptyInput is returned for an input without rows or envelope data.
var ErrEmptyInput = errors.New("lvpack: empty input")

// denseGrid is the TOML shape accepted by pack.
type denseGrid struct {
	Rows [][]float64 `toml:"rows"`
}

func (a *app) packCmd() *cobra.Command {
	var lower bool
	cmd := &cobra.Command{
		Use:   "pack <file|->",
		Short: "Pack a dense TOML grid (rows = [[...]]) into an envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			var grid denseGrid
			if err = toml.Unmarshal(data, &grid); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			if len(grid.Rows) == 0 {
				return fmt.Errorf("%s: %w", args[0], ErrEmptyInput)
			}

			var m matrix.Matrix
			if lower {
				m, err = packed.NewLowerTriangularFrom2D(grid.Rows, a.cfg.PackedOptions()...)
			} else {
				m, err = packed.NewSymmetricFrom2D(grid.Rows, a.cfg.PackedOptions()...)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("packed", "order", m.Rows(), "layout", matrix.LayoutOf(m), "stored", packed.PackedLen(m.Rows()))

			return a.writeEnvelope(m, a.cfg.Format)
		},
	}
	cmd.Flags().BoolVar(&lower, "lower", false, "pack as lower-triangular instead of symmetric")

	return cmd
}

func (a *app) unpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <file|->",
		Short: "Print the full logical matrix of an envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.readEnvelope(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.out, m)

			return err
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file|->",
		Short: "Summarize an envelope: kind, order, storage, trace, norms",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.readEnvelope(args[0])
			if err != nil {
				return err
			}
			env, err := packed.Encode(m)
			if err != nil {
				return err
			}
			tr, err := matrix.Trace(m)
			if err != nil {
				return err
			}
			fro, err := matrix.NormFrobenius(m)
			if err != nil {
				return err
			}
			n := m.Rows()

			var b strings.Builder
			b.WriteString(titleStyle.Render(args[0]) + "\n")
			row := func(k, v string) { b.WriteString(keyStyle.Render(k) + v + "\n") }
			row("kind", env.Kind)
			row("layout", matrix.LayoutOf(m).String())
			row("order", strconv.Itoa(n))
			row("stored", fmt.Sprintf("%d of %d", len(env.Data), n*n))
			row("trace", strconv.FormatFloat(tr, 'g', -1, 64))
			row("frobenius", strconv.FormatFloat(fro, 'g', -1, 64))
			if matrix.IsSymmetric(m, a.cfg.Epsilon) {
				row("symmetric", yesStyle.Render("yes"))
			} else {
				row("symmetric", noStyle.Render("no"))
			}
			_, err = io.WriteString(a.out, b.String())

			return err
		},
	}
}

func (a *app) identityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity <n>",
		Short: "Emit the packed order-n identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("order %q: %w", args[0], err)
			}
			id, err := packed.IdentitySymmetric(n, a.cfg.PackedOptions()...)
			if err != nil {
				return err
			}

			return a.writeEnvelope(id, a.cfg.Format)
		},
	}
}

// readInput reads a file, or stdin for "-".
func (a *app) readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(a.in)
	}

	return os.ReadFile(path)
}

// readEnvelope decodes an envelope; a .json or .toml extension overrides the
// configured format.
func (a *app) readEnvelope(path string) (matrix.Matrix, error) {
	data, err := a.readInput(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}
	opts := a.cfg.PackedOptions()
	var m matrix.Matrix
	if formatFor(path, a.cfg.Format) == config.FormatJSON {
		m, err = packed.UnmarshalJSON(data, opts...)
	} else {
		m, err = packed.UnmarshalTOML(data, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	a.logger.Debug("envelope decoded", "path", path, "order", m.Rows(), "layout", matrix.LayoutOf(m))

	return m, nil
}

func (a *app) writeEnvelope(m matrix.Matrix, format string) error {
	var (
		b   []byte
		err error
	)
	if format == config.FormatJSON {
		if b, err = packed.MarshalJSON(m); err == nil {
			b = append(b, '\n')
		}
	} else {
		b, err = packed.MarshalTOML(m)
	}
	if err != nil {
		return err
	}
	_, err = a.out.Write(b)

	return err
}

func formatFor(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return config.FormatJSON
	case ".toml":
		return config.FormatTOML
	default:
		return fallback
	}
}
