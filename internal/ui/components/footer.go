// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/webqa/internal/ui/styles"
	"github.com/jeranaias/webqa/internal/util"
)

// Footer shows the demo disclaimer, an optional status line and key help.
type Footer struct {
	Help   string
	Status string
	// StatusIsError styles Status as an error.
	StatusIsError bool
	Width         int
	theme         *styles.Theme
}

// NewFooter creates a footer.
func NewFooter(theme *styles.Theme) *Footer {
	return &Footer{Width: defaultWidth, theme: theme}
}

// SetWidth updates the footer width.
func (f *Footer) SetWidth(width int) {
	f.Width = width
}

// View renders the footer.
func (f *Footer) View() string {
	width := f.Width
	if width < minComponentWidth {
		width = minComponentWidth
	}

	lines := []string{f.theme.Footer.Render(util.TruncateWidth(FooterText, width-2))}
	if f.Status != "" {
		style, mark := f.theme.StatusInfo, styles.StatusIndicators.Info
		if f.StatusIsError {
			style, mark = f.theme.StatusError, styles.StatusIndicators.Error
		}
		lines = append(lines, " "+style.Render(util.TruncateWidth(mark+" "+f.Status, width-2)))
	}
	if f.Help != "" {
		lines = append(lines, " "+f.Help)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
