// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/jeranaias/webqa/internal/ui/styles"

// LoadingIndicator is the transient line shown while a search runs.
type LoadingIndicator struct {
	// Frame is the current spinner frame, already rendered.
	Frame string
	theme *styles.Theme
}

// NewLoadingIndicator creates a loading indicator.
func NewLoadingIndicator(theme *styles.Theme) *LoadingIndicator {
	return &LoadingIndicator{theme: theme}
}

// View renders the indicator.
func (l *LoadingIndicator) View() string {
	text := l.theme.LoadingText.Render(LoadingText)
	if l.Frame == "" {
		return text
	}
	return l.Frame + " " + text
}
