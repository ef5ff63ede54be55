// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// TruncateRunes truncates s to at most maxRunes characters, appending "..."
// when something was cut.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TruncateWidth truncates s to maxWidth terminal columns.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// Wrap breaks text into lines no wider than width columns. Whitespace inside
// a line is kept as typed, existing newlines are kept and words longer than
// width are hard split. A single rune wider than width gets a line of its own.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	soft := wordwrap.String(text, width)

	hard := wrap.NewWriter(width)
	hard.PreserveSpace = true
	_, _ = hard.Write([]byte(soft))

	out := hard.String()
	if !strings.HasPrefix(soft, "\n") {
		// wrap breaks before a leading rune that is too wide for the line.
		out = strings.TrimPrefix(out, "\n")
	}
	return out
}
