// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/webqa/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar. Hint is shown right-aligned when there is room.
type Header struct {
	Title string
	Hint  string
	Width int
	theme *styles.Theme
}

// NewHeader creates a header with the default title.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: TitleText,
		Width: defaultWidth,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < minComponentWidth {
		width = minComponentWidth
	}
	// Header style pads one column on each side.
	inner := width - 2

	title := h.theme.HeaderTitle.Render(h.Title)
	line := title
	if h.Hint != "" {
		hint := h.theme.ShortcutDesc.Render(h.Hint)
		gap := inner - lipgloss.Width(title) - lipgloss.Width(hint)
		if gap >= 2 {
			line = title + strings.Repeat(" ", gap) + hint
		}
	}

	return h.theme.Header.Width(width).Render(line)
}
