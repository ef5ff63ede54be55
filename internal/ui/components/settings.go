// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/webqa/internal/ui/styles"
)

// SettingsPanel frames the API key field. Field is the already rendered
// text input; the panel only adds the label, hint and border.
type SettingsPanel struct {
	Field   string
	Focused bool
	Width   int
	theme   *styles.Theme
}

// NewSettingsPanel creates an empty settings panel.
func NewSettingsPanel(theme *styles.Theme) *SettingsPanel {
	return &SettingsPanel{Width: defaultWidth, theme: theme}
}

// SetWidth updates the panel width.
func (p *SettingsPanel) SetWidth(width int) {
	p.Width = width
}

// View renders the panel.
func (p *SettingsPanel) View() string {
	width := p.Width
	if width < minComponentWidth {
		width = minComponentWidth
	}

	label := p.theme.SettingsLabel.Render(APIKeyLabel)
	body := lipgloss.JoinVertical(lipgloss.Left,
		label,
		p.Field,
		p.theme.SettingsHint.Render(APIKeyHint),
	)

	box := p.theme.SettingsBox
	if p.Focused {
		box = box.BorderForeground(styles.Cyan)
	}
	// Border takes two columns.
	return box.Width(width - 2).Render(body)
}
