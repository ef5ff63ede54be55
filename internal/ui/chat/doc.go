// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the Bubble Tea model for the webqa chat screen.

The Model owns the widgets (text fields, spinner, viewport) and nothing
else. Every conversation change goes through conversation.Update; the
effects it returns are carried out here:

  - conversation.Resolve starts ResolveCmd with a cancellable context
  - conversation.CancelRequest cancels that context

Results come back as SearchResultMsg. A result whose request id is no
longer current is dropped.

# Keys

	enter     ask (or leave the API key field)
	esc       cancel a running search, or close settings
	ctrl+s    open/close settings
	tab       switch between query and API key fields
	ctrl+l    start over
	pgup/pgdn scroll
	ctrl+c    quit

# Usage

	m := chat.New(chat.Options{
		Provider: search.NewMockResolver(),
		Theme:    styles.NewTheme(),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
*/
package chat
