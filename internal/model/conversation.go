// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"github.com/samber/lo"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is an ordered, immutable log of messages. The zero value is an
// empty conversation.
type Conversation struct {
	messages []Message
}

// NewConversation creates a conversation holding the given messages in order.
func NewConversation(msgs ...Message) Conversation {
	return Conversation{}.Append(msgs...)
}

// =============================================================================
// DERIVATIONS
// =============================================================================

// Append returns a new conversation with msgs added at the end.
func (c Conversation) Append(msgs ...Message) Conversation {
	next := make([]Message, 0, len(c.messages)+len(msgs))
	next = append(next, c.messages...)
	for _, msg := range msgs {
		next = append(next, msg.Clone())
	}
	return Conversation{messages: next}
}

// WithoutThinking returns a new conversation with every thinking placeholder
// removed. Other messages keep their relative order.
func (c Conversation) WithoutThinking() Conversation {
	return Conversation{messages: lo.Reject(c.messages, func(msg Message, _ int) bool {
		return msg.IsThinking
	})}
}

// =============================================================================
// QUERIES
// =============================================================================

// Messages returns a copy of the message log.
func (c Conversation) Messages() []Message {
	return lo.Map(c.messages, func(msg Message, _ int) Message {
		return msg.Clone()
	})
}

// Len returns the number of messages.
func (c Conversation) Len() int {
	return len(c.messages)
}

// IsEmpty returns true if there are no messages.
func (c Conversation) IsEmpty() bool {
	return len(c.messages) == 0
}

// At returns the message at index i. It panics when i is out of range.
func (c Conversation) At(i int) Message {
	return c.messages[i].Clone()
}

// Last returns the newest message, or false if the conversation is empty.
func (c Conversation) Last() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1].Clone(), true
}

// ThinkingCount returns how many thinking placeholders are present.
func (c Conversation) ThinkingCount() int {
	return lo.CountBy(c.messages, func(msg Message) bool {
		return msg.IsThinking
	})
}

// HasThinking reports whether a thinking placeholder is present.
func (c Conversation) HasThinking() bool {
	return lo.ContainsBy(c.messages, func(msg Message) bool {
		return msg.IsThinking
	})
}

// CountByRole returns how many messages were sent by role.
func (c Conversation) CountByRole(role Role) int {
	return lo.CountBy(c.messages, func(msg Message) bool {
		return msg.Role == role
	})
}
