// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the webqa packages.
//
// String helpers are display-width aware (go-runewidth) so that bubbles,
// the settings panel and the CLI output line up with CJK and emoji content.
// AtomicWriteFile is used by the config package when saving.
package util
