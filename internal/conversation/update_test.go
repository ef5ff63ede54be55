// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeranaias/webqa/internal/model"
	"github.com/jeranaias/webqa/internal/search"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func submitEvent(query, id string) Submit {
	return Submit{Query: query, RequestID: id, At: t0}
}

// =============================================================================
// INITIAL STATE
// =============================================================================

func TestNewState(t *testing.T) {
	s := NewState(t0)

	if s.Conversation.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Conversation.Len())
	}
	g := s.Conversation.At(0)
	if g.ID != GreetingID || g.Role != model.RoleAssistant || g.Content != GreetingText {
		t.Errorf("unexpected greeting: %+v", g)
	}
	if s.Loading || s.CanSubmit() || s.InputDisabled() {
		t.Errorf("fresh state should be idle with nothing to submit")
	}
}

// =============================================================================
// SUBMIT
// =============================================================================

func TestSubmit_EmptyOrWhitespaceIsNoop(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n  "} {
		s := NewState(t0)
		s.Input = q

		next, eff := Update(s, submitEvent(q, "r1"))
		if eff != nil {
			t.Errorf("Submit(%q) produced effect %#v", q, eff)
		}
		if next.Conversation.Len() != 1 || next.Loading || next.Revision != s.Revision {
			t.Errorf("Submit(%q) changed state: %+v", q, next)
		}
	}
}

func TestSubmit_AppendsUserAndPlaceholder(t *testing.T) {
	s := NewState(t0)
	s, _ = Update(s, InputChanged{Text: "What's the weather today?"})
	if !s.CanSubmit() {
		t.Fatal("CanSubmit should be true with input")
	}

	next, eff := Update(s, submitEvent(s.Input, "r1"))

	msgs := next.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	if msgs[1].Role != model.RoleUser || msgs[1].Content != "What's the weather today?" {
		t.Errorf("unexpected user message: %+v", msgs[1])
	}
	if !msgs[2].IsThinking || msgs[2].Content != ThinkingText {
		t.Errorf("unexpected placeholder: %+v", msgs[2])
	}
	if next.Input != "" {
		t.Errorf("input not cleared: %q", next.Input)
	}
	if !next.Loading || !next.InputDisabled() || next.CanSubmit() {
		t.Errorf("expected loading state, got %+v", next)
	}
	if next.Revision <= s.Revision {
		t.Errorf("revision not bumped")
	}

	want := Resolve{RequestID: "r1", Query: "What's the weather today?"}
	if eff != want {
		t.Errorf("effect = %#v, want %#v", eff, want)
	}
}

func TestSubmit_KeepsRawQueryText(t *testing.T) {
	next, _ := Update(NewState(t0), submitEvent("  padded  ", "r1"))
	if got := next.Conversation.At(1).Content; got != "  padded  " {
		t.Errorf("content = %q", got)
	}
}

func TestSubmit_WhileLoadingIsIgnored(t *testing.T) {
	s, _ := Update(NewState(t0), submitEvent("first", "r1"))

	next, eff := Update(s, submitEvent("second", "r2"))
	if eff != nil {
		t.Errorf("second submit produced effect %#v", eff)
	}
	if next.Conversation.Len() != s.Conversation.Len() || next.RequestID != "r1" {
		t.Errorf("second submit changed state")
	}
	if next.Conversation.ThinkingCount() != 1 {
		t.Errorf("ThinkingCount = %d, want 1", next.Conversation.ThinkingCount())
	}
}

func TestSubmit_GeneratesIDWhenMissing(t *testing.T) {
	next, eff := Update(NewState(t0), Submit{Query: "x", At: t0})
	req, ok := eff.(Resolve)
	if !ok || req.RequestID == "" || req.RequestID != next.RequestID {
		t.Errorf("effect = %#v, state id = %q", eff, next.RequestID)
	}
}

func TestNewSubmit_FillsIDAndTime(t *testing.T) {
	a, b := NewSubmit("q"), NewSubmit("q")
	if a.RequestID == "" || a.RequestID == b.RequestID {
		t.Errorf("request ids = %q, %q", a.RequestID, b.RequestID)
	}
	if a.At.IsZero() {
		t.Error("At not set")
	}
}

func TestInputChanged_IgnoredWhileLoading(t *testing.T) {
	s, _ := Update(NewState(t0), submitEvent("q", "r1"))
	next, _ := Update(s, InputChanged{Text: "typed"})
	if next.Input != "" {
		t.Errorf("input changed while loading: %q", next.Input)
	}
}

// =============================================================================
// COMPLETION
// =============================================================================

func TestResolved_ReplacesPlaceholder(t *testing.T) {
	s, _ := Update(NewState(t0), submitEvent("What's the weather today?", "r1"))
	res := search.Answer("What's the weather today?")

	next, eff := Update(s, Resolved{RequestID: "r1", Result: res, At: t0.Add(time.Second)})
	if eff != nil {
		t.Errorf("unexpected effect %#v", eff)
	}

	msgs := next.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	if next.Conversation.HasThinking() {
		t.Error("placeholder still present")
	}
	answer := msgs[2]
	if answer.Role != model.RoleAssistant || answer.Content != res.Content || answer.IsError {
		t.Errorf("unexpected answer: %+v", answer)
	}
	if len(answer.Sources) != 3 || answer.Sources[0] != "web-search-result-1.com" {
		t.Errorf("sources = %v", answer.Sources)
	}
	if next.Loading || next.RequestID != "" {
		t.Errorf("still loading: %+v", next)
	}
	if next.Conversation.CountByRole(model.RoleUser) != 1 {
		t.Errorf("expected exactly one user message")
	}
}

func TestResolved_AttachesPlaceholderSourcesWhenEmpty(t *testing.T) {
	s, _ := Update(NewState(t0), submitEvent("q", "r1"))
	next, _ := Update(s, Resolved{RequestID: "r1", Result: search.Result{Content: "x"}, At: t0})

	last, _ := next.Conversation.Last()
	if len(last.Sources) != 3 {
		t.Errorf("sources = %v", last.Sources)
	}
}

func TestFailed_AppendsErrorMessage(t *testing.T) {
	s, _ := Update(NewState(t0), submitEvent("q", "r1"))
	err := search.Fail("q", errors.New("timeout"))

	next, _ := Update(s, Failed{RequestID: "r1", Err: err, At: t0})

	last, _ := next.Conversation.Last()
	if !last.IsError || last.Content != ErrorText || last.HasSources() {
		t.Errorf("unexpected error message: %+v", last)
	}
	if next.Loading || next.Conversation.HasThinking() {
		t.Errorf("expected idle without placeholder")
	}
}

func TestFailed_CanceledLeavesNoMessage(t *testing.T) {
	s, _ := Update(NewState(t0), submitEvent("q", "r1"))
	next, _ := Update(s, Failed{RequestID: "r1", Err: context.Canceled, At: t0})

	if next.Conversation.Len() != 2 || next.Loading {
		t.Errorf("unexpected state after canceled completion: %+v", next.Messages())
	}
}

func TestCompletion_StaleIsIgnored(t *testing.T) {
	s, _ := Update(NewState(t0), submitEvent("q", "r1"))

	tests := []struct {
		name string
		ev   Event
	}{
		{"resolved other id", Resolved{RequestID: "old", Result: search.Answer("q"), At: t0}},
		{"failed other id", Failed{RequestID: "old", Err: search.ErrSearchFailure, At: t0}},
		{"resolved empty id", Resolved{Result: search.Answer("q"), At: t0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, _ := Update(s, tc.ev)
			if next.Revision != s.Revision || !next.Loading || next.Conversation.Len() != s.Conversation.Len() {
				t.Errorf("stale completion changed state")
			}
		})
	}
}

func TestCompletion_AfterFinishIsIgnored(t *testing.T) {
	s, _ := Update(NewState(t0), submitEvent("q", "r1"))
	s, _ = Update(s, Resolved{RequestID: "r1", Result: search.Answer("q"), At: t0})

	next, _ := Update(s, Resolved{RequestID: "r1", Result: search.Answer("q"), At: t0})
	if next.Conversation.Len() != s.Conversation.Len() {
		t.Error("duplicate completion appended a message")
	}
}

// =============================================================================
// CANCEL / CLEAR
// =============================================================================

func TestCancel(t *testing.T) {
	s, _ := Update(NewState(t0), submitEvent("q", "r1"))

	next, eff := Update(s, Cancel{})
	if eff != (CancelRequest{RequestID: "r1"}) {
		t.Errorf("effect = %#v", eff)
	}
	if next.Loading || next.Conversation.HasThinking() || next.Conversation.Len() != 2 {
		t.Errorf("unexpected state after cancel: %+v", next.Messages())
	}
	for _, msg := range next.Messages() {
		if msg.IsError {
			t.Error("cancel produced an error message")
		}
	}

	// The late completion is stale now.
	late, _ := Update(next, Resolved{RequestID: "r1", Result: search.Answer("q"), At: t0})
	if late.Conversation.Len() != 2 {
		t.Error("late completion after cancel was applied")
	}
}

func TestCancel_IdleIsNoop(t *testing.T) {
	s := NewState(t0)
	next, eff := Update(s, Cancel{})
	if eff != nil || next.Revision != s.Revision {
		t.Errorf("cancel while idle changed state")
	}
}

func TestClear(t *testing.T) {
	s, _ := Update(NewState(t0), submitEvent("q", "r1"))

	next, eff := Update(s, Clear{At: t0.Add(time.Minute)})
	if eff != (CancelRequest{RequestID: "r1"}) {
		t.Errorf("effect = %#v", eff)
	}
	if next.Conversation.Len() != 1 || next.Conversation.At(0).ID != GreetingID {
		t.Errorf("conversation not reset: %+v", next.Messages())
	}
	if next.Loading || next.Revision <= s.Revision {
		t.Errorf("unexpected state: %+v", next)
	}

	idle, eff := Update(next, Clear{At: t0})
	if eff != nil || idle.Conversation.Len() != 1 {
		t.Errorf("clear while idle: effect %#v, len %d", eff, idle.Conversation.Len())
	}
}

// =============================================================================
// SETTINGS
// =============================================================================

func TestSettings(t *testing.T) {
	s := NewState(t0)

	s, _ = Update(s, ToggleSettings{})
	if !s.SettingsOpen {
		t.Error("settings should be open")
	}
	s, _ = Update(s, APIKeyChanged{Key: "sk-test"})
	if s.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", s.APIKey)
	}
	s, _ = Update(s, ToggleSettings{})
	if s.SettingsOpen || s.APIKey != "sk-test" {
		t.Errorf("closing settings should keep the key")
	}
	if s.Revision != 0 {
		t.Errorf("settings changes must not bump revision")
	}
}

// =============================================================================
// SNAPSHOTS
// =============================================================================

func TestUpdate_DoesNotModifyPreviousSnapshot(t *testing.T) {
	before, _ := Update(NewState(t0), submitEvent("q", "r1"))
	snapshot := before.Messages()

	_, _ = Update(before, Resolved{RequestID: "r1", Result: search.Answer("q"), At: t0})
	_, _ = Update(before, Cancel{})

	after := before.Messages()
	if len(after) != len(snapshot) {
		t.Fatalf("previous snapshot length changed")
	}
	for i := range after {
		if after[i].ID != snapshot[i].ID || after[i].IsThinking != snapshot[i].IsThinking {
			t.Errorf("message %d changed", i)
		}
	}
}

func TestLoadingFlag_Lifecycle(t *testing.T) {
	s := NewState(t0)
	if s.Loading {
		t.Fatal("loading before submit")
	}
	s, _ = Update(s, submitEvent("tell me tech news", "r1"))
	if !s.Loading || !s.InputDisabled() {
		t.Fatal("not loading after submit")
	}
	s, _ = Update(s, Resolved{RequestID: "r1", Result: search.Answer("tell me tech news"), At: t0})
	if s.Loading || s.InputDisabled() {
		t.Fatal("still loading after completion")
	}

	answer, ok := s.LastAnswer()
	if !ok || answer.Content != search.Answer("tell me tech news").Content {
		t.Errorf("LastAnswer = %+v", answer)
	}
}
