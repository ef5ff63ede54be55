// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by NewThemeWithMode.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the application.
// Styles are built from the theme's own renderer, so a theme can be forced
// dark or light independent of the terminal.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	renderer *lipgloss.Renderer

	// ==========================================================================
	// HEADER / FOOTER
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Footer      lipgloss.Style

	// ==========================================================================
	// SETTINGS PANEL
	// ==========================================================================

	SettingsBox   lipgloss.Style
	SettingsLabel lipgloss.Style
	SettingsHint  lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ErrorBubble     lipgloss.Style
	ThinkingBubble  lipgloss.Style
	AssistantLabel  lipgloss.Style
	Timestamp       lipgloss.Style
	SourcesTitle    lipgloss.Style
	SourceItem      lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style
	Button           lipgloss.Style
	ButtonDisabled   lipgloss.Style

	// ==========================================================================
	// LOADING / STATUS
	// ==========================================================================

	Spinner      lipgloss.Style
	LoadingText  lipgloss.Style
	StatusError  lipgloss.Style
	StatusInfo   lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a theme that follows the terminal background.
func NewTheme() *Theme {
	return NewThemeWithMode(ModeAuto)
}

// NewThemeWithMode creates a theme for stdout. mode is "dark", "light" or
// "auto"; anything else behaves like "auto".
func NewThemeWithMode(mode string) *Theme {
	r := lipgloss.NewRenderer(os.Stdout)
	switch mode {
	case ModeDark:
		r.SetHasDarkBackground(true)
	case ModeLight:
		r.SetHasDarkBackground(false)
	}
	return newTheme(r)
}

// NewThemeForReload creates a theme for stdout without querying the
// terminal. "auto" uses autoDark, the background detected at startup. Safe to
// call while a Bubble Tea program owns the terminal.
func NewThemeForReload(mode string, autoDark bool) *Theme {
	r := lipgloss.NewRenderer(os.Stdout)
	switch mode {
	case ModeDark:
		r.SetHasDarkBackground(true)
	case ModeLight:
		r.SetHasDarkBackground(false)
	default:
		r.SetHasDarkBackground(autoDark)
	}
	return newTheme(r)
}

// NewPlainTheme creates a theme that emits no color codes. Layout (borders,
// padding, alignment) is unchanged. Used for tests and non-TTY output.
func NewPlainTheme() *Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	r.SetHasDarkBackground(true)
	return newTheme(r)
}

func newTheme(r *lipgloss.Renderer) *Theme {
	t := &Theme{
		IsDark:       r.HasDarkBackground(),
		HasTrueColor: r.ColorProfile() == termenv.TrueColor,
		ColorProfile: r.ColorProfile(),
		renderer:     r,
	}
	t.initStyles()
	return t
}

// NewStyle returns an empty style bound to the theme's renderer.
func (t *Theme) NewStyle() lipgloss.Style {
	return t.renderer.NewStyle()
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	s := t.NewStyle

	// Header / footer
	t.Header = s().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.HeaderTitle = s().
		Bold(true).
		Foreground(Cyan)

	t.Footer = s().
		Foreground(TextMuted).
		Italic(true).
		Padding(0, 1)

	// Settings
	t.SettingsBox = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Padding(0, 1)

	t.SettingsLabel = s().
		Bold(true).
		Foreground(TextPrimary)

	t.SettingsHint = s().
		Foreground(TextMuted).
		Italic(true)

	// Message bubbles
	t.UserBubble = s().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1)

	t.AssistantBubble = s().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 1)

	t.ErrorBubble = s().
		Foreground(ErrorBubbleFg).
		Background(ErrorBubbleBg).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(Rose).
		Padding(0, 1)

	t.ThinkingBubble = s().
		Foreground(TextSecondary).
		Italic(true).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.AssistantLabel = s().
		Bold(true).
		Foreground(Purple)

	t.Timestamp = s().
		Foreground(TextMuted)

	t.SourcesTitle = s().
		Bold(true).
		Foreground(TextSecondary)

	t.SourceItem = s().
		Foreground(LinkColor).
		Underline(true)

	// Input area
	t.InputContainer = s().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = s().
		Foreground(Cyan).
		Bold(true)

	t.InputPlaceholder = s().
		Foreground(TextMuted).
		Italic(true)

	t.Button = s().
		Foreground(TextInverse).
		Background(Blue).
		Bold(true).
		Padding(0, 1)

	t.ButtonDisabled = s().
		Foreground(TextMuted).
		Background(OverlayDim).
		Padding(0, 1)

	// Loading / status
	t.Spinner = s().
		Foreground(Purple)

	t.LoadingText = s().
		Foreground(TextSecondary).
		Italic(true)

	t.StatusError = s().
		Foreground(Rose).
		Bold(true)

	t.StatusInfo = s().
		Foreground(Emerald)

	t.ShortcutKey = s().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = s().
		Foreground(TextMuted)
}
