// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"
	"time"
)

var testTime = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

// =============================================================================
// ROLE TESTS
// =============================================================================

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "AI Assistant"},
		{Role("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("Role(%q).DisplayName() = %q, want %q", tc.role, got, tc.want)
		}
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestMessageConstructors(t *testing.T) {
	user := NewUserMessage("u", "hello", testTime)
	if !user.IsUser() || user.IsThinking || user.IsError || user.HasSources() {
		t.Errorf("unexpected user message: %+v", user)
	}

	thinking := NewThinkingMessage("t", "...", testTime)
	if thinking.Role != RoleAssistant || !thinking.IsThinking {
		t.Errorf("unexpected thinking message: %+v", thinking)
	}

	errMsg := NewErrorMessage("e", "boom", testTime)
	if !errMsg.IsError || errMsg.IsThinking {
		t.Errorf("unexpected error message: %+v", errMsg)
	}

	answer := NewAnswerMessage("a", "42", []string{"a.com", "b.org"}, testTime)
	if !answer.HasSources() || len(answer.Sources) != 2 {
		t.Errorf("unexpected answer message: %+v", answer)
	}
	if !answer.Timestamp.Equal(testTime) {
		t.Errorf("Timestamp = %v, want %v", answer.Timestamp, testTime)
	}
}

func TestNewAnswerMessage_CopiesSources(t *testing.T) {
	sources := []string{"a.com"}
	msg := NewAnswerMessage("a", "x", sources, testTime)
	sources[0] = "changed"

	if msg.Sources[0] != "a.com" {
		t.Errorf("message sources alias caller slice: %v", msg.Sources)
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := NewUserMessage("u", "What's the weather today?", testTime)
	if got := msg.Preview(10); got != "What's ..." {
		t.Errorf("Preview = %q", got)
	}
	if got := msg.Preview(100); got != msg.Content {
		t.Errorf("Preview = %q, want full content", got)
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_ZeroValue(t *testing.T) {
	var conv Conversation
	if !conv.IsEmpty() || conv.Len() != 0 {
		t.Errorf("zero conversation should be empty")
	}
	if _, ok := conv.Last(); ok {
		t.Errorf("Last() on empty conversation should report false")
	}
	if conv.HasThinking() {
		t.Errorf("empty conversation has no thinking placeholder")
	}
}

func TestConversation_AppendPreservesOrder(t *testing.T) {
	conv := NewConversation(NewAssistantMessage("g", "hi", testTime))
	conv = conv.Append(
		NewUserMessage("1", "first", testTime),
		NewUserMessage("2", "second", testTime),
	)

	if conv.Len() != 3 {
		t.Fatalf("Len = %d, want 3", conv.Len())
	}
	ids := []string{}
	for _, msg := range conv.Messages() {
		ids = append(ids, msg.ID)
	}
	if ids[0] != "g" || ids[1] != "1" || ids[2] != "2" {
		t.Errorf("order = %v", ids)
	}
	last, ok := conv.Last()
	if !ok || last.ID != "2" {
		t.Errorf("Last = %+v", last)
	}
}

func TestConversation_AppendDoesNotAlias(t *testing.T) {
	base := NewConversation(NewUserMessage("1", "a", testTime))

	left := base.Append(NewUserMessage("left", "l", testTime))
	right := base.Append(NewUserMessage("right", "r", testTime))

	if base.Len() != 1 {
		t.Errorf("base was modified: Len = %d", base.Len())
	}
	if left.At(1).ID != "left" {
		t.Errorf("left snapshot overwritten: %q", left.At(1).ID)
	}
	if right.At(1).ID != "right" {
		t.Errorf("right snapshot = %q", right.At(1).ID)
	}
}

func TestConversation_MessagesReturnsCopy(t *testing.T) {
	conv := NewConversation(NewAnswerMessage("a", "x", []string{"s"}, testTime))

	msgs := conv.Messages()
	msgs[0].Content = "mutated"
	msgs[0].Sources[0] = "mutated"

	if got := conv.At(0); got.Content != "x" || got.Sources[0] != "s" {
		t.Errorf("conversation changed through Messages(): %+v", got)
	}
}

func TestConversation_WithoutThinking(t *testing.T) {
	conv := NewConversation(
		NewAssistantMessage("g", "hi", testTime),
		NewUserMessage("q", "weather?", testTime),
		NewThinkingMessage("t", "...", testTime),
	)
	if conv.ThinkingCount() != 1 || !conv.HasThinking() {
		t.Fatalf("expected one thinking placeholder")
	}

	cleaned := conv.WithoutThinking()
	if cleaned.Len() != 2 || cleaned.HasThinking() {
		t.Errorf("WithoutThinking left %d messages, thinking=%v", cleaned.Len(), cleaned.HasThinking())
	}
	if cleaned.At(1).ID != "q" {
		t.Errorf("order changed: %q", cleaned.At(1).ID)
	}
	if conv.Len() != 3 {
		t.Errorf("receiver was modified")
	}
}

func TestConversation_CountByRole(t *testing.T) {
	conv := NewConversation(
		NewAssistantMessage("g", "hi", testTime),
		NewUserMessage("q1", "a", testTime),
		NewAssistantMessage("a1", "b", testTime),
		NewUserMessage("q2", "c", testTime),
	)

	if got := conv.CountByRole(RoleUser); got != 2 {
		t.Errorf("CountByRole(user) = %d, want 2", got)
	}
	if got := conv.CountByRole(RoleAssistant); got != 2 {
		t.Errorf("CountByRole(assistant) = %d, want 2", got)
	}
}
