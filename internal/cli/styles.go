// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

// cliStyles holds the styles for line-mode output. They are bound to one
// writer so piped output carries no escape codes.
type cliStyles struct {
	Prompt  lipgloss.Style
	Label   lipgloss.Style
	Answer  lipgloss.Style
	Source  lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
}

func newCLIStyles(w io.Writer) cliStyles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorProfile(w))

	return cliStyles{
		Prompt: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")), // Cyan
		Label: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141")), // Purple
		Answer: r.NewStyle().
			Foreground(lipgloss.Color("252")),
		Source: r.NewStyle().
			Foreground(lipgloss.Color("75")). // Link blue
			Underline(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("245")),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true),
	}
}
