// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

// MarkdownRenderer renders answer text through glamour. The underlying
// TermRenderer is rebuilt only when the wrap width changes.
type MarkdownRenderer struct {
	style string

	mu    sync.Mutex
	width int
	r     *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer for a glamour standard style
// ("dark", "light", "notty", ...). An empty style follows the terminal.
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{style: style}
}

// StyleForTheme maps a theme mode to a glamour style name.
func StyleForTheme(isDark bool) string {
	if isDark {
		return glamourstyles.DarkStyle
	}
	return glamourstyles.LightStyle
}

// PlainStyle renders markdown structure without colors.
const PlainStyle = glamourstyles.NoTTYStyle

// Render renders content wrapped at width. On any glamour error the content
// is returned unchanged.
func (m *MarkdownRenderer) Render(content string, width int) string {
	if width < minComponentWidth {
		width = minComponentWidth
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.r == nil || m.width != width {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
		if m.style == "" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle(m.style))
		}
		r, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return content
		}
		m.r, m.width = r, width
	}

	out, err := m.r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
