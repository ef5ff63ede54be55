// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"strings"
	"time"

	"github.com/jeranaias/webqa/internal/model"
)

// Fixed texts shown in the conversation.
const (
	GreetingText = "Hi! I can search the web and answer questions for you. What would you like to know?"
	ThinkingText = "🔍 Searching the web..."
	ErrorText    = "Sorry, I encountered an error while searching. Please try again."
)

// GreetingID is the message id of the opening assistant message.
const GreetingID = "greeting"

// State is one snapshot of the conversation and its input controls.
type State struct {
	// Conversation is the message log.
	Conversation model.Conversation

	// Input is the text currently in the query field.
	Input string

	// Loading is true while a request is in flight.
	Loading bool

	// RequestID identifies the in-flight request. Empty when idle.
	RequestID string

	// SettingsOpen controls the settings panel.
	SettingsOpen bool

	// APIKey is collected by the settings panel and never used.
	APIKey string

	// Revision increases on every change to the message log.
	Revision uint64
}

// NewState returns a conversation holding only the greeting.
func NewState(at time.Time) State {
	return State{
		Conversation: model.NewConversation(greeting(at)),
	}
}

func greeting(at time.Time) model.Message {
	return model.NewAssistantMessage(GreetingID, GreetingText, at)
}

// Messages returns a copy of the message log.
func (s State) Messages() []model.Message {
	return s.Conversation.Messages()
}

// CanSubmit reports whether the submit control is enabled.
func (s State) CanSubmit() bool {
	return !s.Loading && strings.TrimSpace(s.Input) != ""
}

// InputDisabled reports whether the query field should ignore typing.
func (s State) InputDisabled() bool {
	return s.Loading
}

// LastAnswer returns the newest assistant message that is not a placeholder.
func (s State) LastAnswer() (model.Message, bool) {
	msgs := s.Conversation.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == model.RoleAssistant && !msgs[i].IsThinking {
			return msgs[i], true
		}
	}
	return model.Message{}, false
}

// withConversation swaps in conv and bumps the revision.
func (s State) withConversation(conv model.Conversation) State {
	s.Conversation = conv
	s.Revision++
	return s
}
