// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/jeranaias/webqa/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "AI Assistant"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
// Messages are values; once appended to a Conversation they are never changed.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Content string   `json:"content"`
	Sources []string `json:"sources,omitempty"`

	// Markers
	IsError    bool `json:"is_error,omitempty"`
	IsThinking bool `json:"is_thinking,omitempty"`
}

// NewUserMessage creates a user message.
func NewUserMessage(id, content string, at time.Time) Message {
	return Message{
		ID:        id,
		Role:      RoleUser,
		Content:   content,
		Timestamp: at,
	}
}

// NewAssistantMessage creates a plain assistant message.
func NewAssistantMessage(id, content string, at time.Time) Message {
	return Message{
		ID:        id,
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: at,
	}
}

// NewAnswerMessage creates an assistant message carrying citations.
func NewAnswerMessage(id, content string, sources []string, at time.Time) Message {
	msg := NewAssistantMessage(id, content, at)
	msg.Sources = append([]string(nil), sources...)
	return msg
}

// NewThinkingMessage creates the transient placeholder shown while a search
// is in flight.
func NewThinkingMessage(id, content string, at time.Time) Message {
	msg := NewAssistantMessage(id, content, at)
	msg.IsThinking = true
	return msg
}

// NewErrorMessage creates an assistant message flagged as an error.
func NewErrorMessage(id, content string, at time.Time) Message {
	msg := NewAssistantMessage(id, content, at)
	msg.IsError = true
	return msg
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// HasSources reports whether a citation block should be rendered.
func (m Message) HasSources() bool {
	return len(m.Sources) > 0
}

// IsUser reports whether the message was sent by the user.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// Preview returns a truncated preview of the message content.
func (m Message) Preview(maxLen int) string {
	return util.TruncateRunes(m.Content, maxLen)
}

// Clone returns a copy that shares no slices with m.
func (m Message) Clone() Message {
	if m.Sources != nil {
		m.Sources = append([]string(nil), m.Sources...)
	}
	return m
}
