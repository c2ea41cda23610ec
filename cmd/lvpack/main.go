// SPDX-License-Identifier: MIT

// Command lvpack converts between dense TOML grids and packed matrix
// envelopes and inspects packed envelopes.
//
//	lvpack pack grid.toml > sym.toml
//	lvpack info sym.toml
//	lvpack unpack sym.toml
//	lvpack identity 4 --format json
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		log.NewWithOptions(os.Stderr, log.Options{Prefix: appName}).Error("command failed", "err", err)
		os.Exit(1)
	}
}
