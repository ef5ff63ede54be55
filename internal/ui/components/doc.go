// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual pieces of the webqa TUI.
//
// Components hold no business logic. Each one is configured with plain
// values and returns a string from View, so rendering the same values twice
// gives the same output.
//
//   - Header: title bar
//   - SettingsPanel: API key field with label and hint
//   - MessageBubble / MessageList: conversation rendering
//   - LoadingIndicator: spinner shown while a search runs
//   - InputBar: query field and the Ask button
//   - Footer: demo disclaimer and key help
//   - MarkdownRenderer: glamour rendering of answers
package components
