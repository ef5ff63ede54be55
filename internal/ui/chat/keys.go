// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat interface.
type KeyMap struct {
	Submit   key.Binding
	Cancel   key.Binding
	Settings key.Binding
	Focus    key.Binding
	Clear    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings. Printable keys are left
// to the text fields, so every binding uses a modifier or a special key.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ask"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "settings"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "new chat"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Settings, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Cancel, k.Clear},
		{k.Settings, k.Focus},
		{k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

// =============================================================================
// CONTEXT-AWARE HELP
// =============================================================================

// HelpContext is the UI state used to pick which bindings to advertise.
type HelpContext string

const (
	// ContextInput is the idle state with the query field focused.
	ContextInput HelpContext = "input"
	// ContextLoading is while a search runs.
	ContextLoading HelpContext = "loading"
	// ContextSettings is while the API key field is focused.
	ContextSettings HelpContext = "settings"
)

// ForContext returns a key map containing only the bindings that do
// something in ctx. Disabled bindings are hidden by the help view.
func (k KeyMap) ForContext(ctx HelpContext) KeyMap {
	switch ctx {
	case ContextLoading:
		k.Submit.SetEnabled(false)
		k.Focus.SetEnabled(false)
	case ContextSettings:
		k.Cancel.SetHelp("esc", "close settings")
		k.Submit.SetHelp("enter", "done")
	default:
		k.Cancel.SetEnabled(false)
	}
	return k
}
