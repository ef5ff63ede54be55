// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/webqa/internal/model"
	"github.com/jeranaias/webqa/internal/ui/styles"
	"github.com/jeranaias/webqa/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one message. User messages sit on the right,
// assistant messages on the left under an "AI Assistant" label.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool
	// Markdown, when set, renders assistant answers through glamour.
	Markdown *MarkdownRenderer
	theme    *styles.Theme
}

// NewMessageBubble creates a bubble for msg.
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         defaultWidth,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the available width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	if b.Message.IsUser() {
		return b.renderUserBubble()
	}
	return b.renderAssistantBubble()
}

// contentWidth is the wrap width inside a bubble: three quarters of the
// line, minus border and padding.
func (b *MessageBubble) contentWidth() int {
	w := b.Width*3/4 - 4
	if w < minComponentWidth {
		w = minComponentWidth
	}
	return w
}

// ==========================================================================
// USER BUBBLE - right-aligned
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := util.Wrap(b.Message.Content, b.contentWidth())
	bubble := b.theme.UserBubble.Render(content)

	lines := []string{bubble}
	if ts := b.renderTimestamp(); ts != "" {
		lines = append(lines, ts)
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = lipgloss.PlaceHorizontal(b.Width, lipgloss.Right, l)
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// ==========================================================================
// ASSISTANT BUBBLE - left-aligned, error and thinking variants
// ==========================================================================

func (b *MessageBubble) renderAssistantBubble() string {
	msg := b.Message
	width := b.contentWidth()

	var body string
	if b.Markdown != nil && !msg.IsError && !msg.IsThinking {
		body = b.Markdown.Render(msg.Content, width)
	} else {
		body = util.Wrap(msg.Content, width)
	}

	if msg.HasSources() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", b.renderSources(width))
	}

	style := b.theme.AssistantBubble
	switch {
	case msg.IsError:
		style = b.theme.ErrorBubble
	case msg.IsThinking:
		style = b.theme.ThinkingBubble
	}

	lines := []string{
		b.theme.AssistantLabel.Render(model.RoleAssistant.DisplayName()),
		style.Render(body),
	}
	if ts := b.renderTimestamp(); ts != "" && !msg.IsThinking {
		lines = append(lines, ts)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (b *MessageBubble) renderSources(width int) string {
	lines := []string{b.theme.SourcesTitle.Render(SourcesTitle)}
	for _, src := range b.Message.Sources {
		label := util.TruncateWidth(src, width-3)
		lines = append(lines, SourceBullet+" "+b.theme.SourceItem.Render(label))
	}
	return strings.Join(lines, "\n")
}

// ==========================================================================
// HELPER METHODS
// ==========================================================================

// renderTimestamp renders the message time as 15:04:05.
func (b *MessageBubble) renderTimestamp() string {
	if !b.ShowTimestamp || b.Message.Timestamp.IsZero() {
		return ""
	}
	return b.theme.Timestamp.Render(b.Message.Timestamp.Format(TimestampLayout))
}

// =============================================================================
// MESSAGE LIST COMPONENT
// =============================================================================

// MessageList renders a sequence of messages separated by blank lines.
type MessageList struct {
	Messages       []model.Message
	Width          int
	ShowTimestamps bool
	Markdown       *MarkdownRenderer
	theme          *styles.Theme
}

// NewMessageList creates a MessageList.
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		Width:          defaultWidth,
		ShowTimestamps: true,
		theme:          theme,
	}
}

// SetMessages sets the messages to display.
func (ml *MessageList) SetMessages(messages []model.Message) {
	ml.Messages = messages
}

// SetWidth sets the list width.
func (ml *MessageList) SetWidth(width int) {
	ml.Width = width
}

// View renders all messages.
func (ml *MessageList) View() string {
	parts := make([]string, 0, len(ml.Messages))
	for _, msg := range ml.Messages {
		bubble := NewMessageBubble(msg, ml.theme)
		bubble.SetWidth(ml.Width)
		bubble.ShowTimestamp = ml.ShowTimestamps
		bubble.Markdown = ml.Markdown
		parts = append(parts, bubble.View())
	}
	return strings.Join(parts, "\n\n")
}
