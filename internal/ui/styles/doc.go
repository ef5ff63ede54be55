// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the webqa TUI.

# Color System (colors.go)

All colors are Lip Gloss AdaptiveColor values with a light and a dark
variant:

	UserBubbleBg / UserBubbleFg           - user messages
	AssistantBubbleBg / AssistantBubbleFg - assistant messages
	ErrorBubbleBg / ErrorBubbleFg         - failed searches
	TextPrimary / TextSecondary / TextMuted

# Theme (theme.go)

Theme bundles every lipgloss.Style used by the components. Each theme owns
a lipgloss.Renderer, which lets the [ui] theme setting force dark or light
colors:

	theme := styles.NewThemeWithMode(cfg.UI.Theme)

NewPlainTheme renders without color codes and is what tests use.

# Animations (animations.go)

SpinnerConfig describes frame-based spinners and converts to a bubbles
spinner via Bubble.
*/
package styles
