// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/webqa/internal/ui/styles"
)

// =============================================================================
// INPUT BAR COMPONENT
// =============================================================================

// InputBar is the query row: the text field and the Ask button.
type InputBar struct {
	// Field is the rendered text input.
	Field string
	// Disabled greys out the row while a search runs.
	Disabled bool
	// CanSubmit enables the Ask button.
	CanSubmit bool
	Width     int
	theme     *styles.Theme
}

// NewInputBar creates an input bar.
func NewInputBar(theme *styles.Theme) *InputBar {
	return &InputBar{Width: defaultWidth, theme: theme}
}

// SetWidth updates the bar width.
func (b *InputBar) SetWidth(width int) {
	b.Width = width
}

// FieldWidth returns how many columns the text field may use.
func (b *InputBar) FieldWidth() int {
	// container padding (2) + prompt "> " (2) + gap (1) + button
	w := b.Width - 5 - lipgloss.Width(b.button())
	if w < 1 {
		w = 1
	}
	return w
}

// View renders the bar.
func (b *InputBar) View() string {
	width := b.Width
	if width < minComponentWidth {
		width = minComponentWidth
	}

	prompt := b.theme.InputPrompt.Render(">")
	if b.Disabled {
		prompt = b.theme.InputPlaceholder.Render(">")
	}

	button := b.button()
	left := prompt + " " + b.Field
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}

	return b.theme.InputContainer.Width(width).Render(left + strings.Repeat(" ", gap) + button)
}

func (b *InputBar) button() string {
	label := "[" + SubmitLabel + "]"
	if b.Disabled || !b.CanSubmit {
		return b.theme.ButtonDisabled.Render(label)
	}
	return b.theme.Button.Render(label)
}
