// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     repl
// Description: Lipgloss styles for the REPL
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	InputEchoStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ResultStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	SystemMessageStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	TranscriptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// RenderError renders an evaluation error
func RenderError(err string) string {
	return ErrorMessageStyle.Render("Fehler: " + err)
}

// RenderKeyHint renders one shortcut of the help bar
func RenderKeyHint(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}
