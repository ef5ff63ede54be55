// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// renderChat renders the complete chat view.
// Layout: header + [settings] + messages (viewport) + [loading] + input + footer.
// The viewport height is derived from chromeHeight so the total matches the
// terminal height.
func (m Model) renderChat() string {
	parts := []string{m.header.View()}
	if m.state.SettingsOpen {
		parts = append(parts, m.settings.View())
	}
	parts = append(parts, m.viewport.View())
	if m.state.Loading {
		parts = append(parts, m.loading.View())
	}
	parts = append(parts, m.inputBar.View(), m.footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// chromeHeight measures everything except the viewport.
func (m Model) chromeHeight() int {
	h := lipgloss.Height(m.header.View())
	if m.state.SettingsOpen {
		h += lipgloss.Height(m.settings.View())
	}
	if m.state.Loading {
		h += lipgloss.Height(m.loading.View())
	}
	h += lipgloss.Height(m.inputBar.View())
	h += lipgloss.Height(m.footer.View())
	return h
}
