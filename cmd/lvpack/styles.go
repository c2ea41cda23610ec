// SPDX-License-Identifier: MIT

package main

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// keyStyle pads labels so info values line up.
	keyStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	yesStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	noStyle  = lipgloss.NewStyle().Foreground(colorError)
)
