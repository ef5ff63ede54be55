// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"strconv"
	"strings"

	"github.com/jeranaias/webqa/internal/model"
	"github.com/jeranaias/webqa/internal/search"
)

// Update applies ev to s. It is a pure function.
func Update(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case Submit:
		return submit(s, ev)
	case Resolved:
		return resolved(s, ev)
	case Failed:
		return failed(s, ev)
	case Cancel:
		return cancel(s)
	case Clear:
		return reset(s, ev)
	case InputChanged:
		if !s.Loading {
			s.Input = ev.Text
		}
		return s, nil
	case ToggleSettings:
		s.SettingsOpen = !s.SettingsOpen
		return s, nil
	case APIKeyChanged:
		s.APIKey = ev.Key
		return s, nil
	default:
		return s, nil
	}
}

// =============================================================================
// REQUEST LIFECYCLE
// =============================================================================

func submit(s State, ev Submit) (State, Effect) {
	// One request at a time keeps at most one placeholder in the log.
	if s.Loading || strings.TrimSpace(ev.Query) == "" {
		return s, nil
	}

	id := ev.RequestID
	if id == "" {
		id = "req-" + strconv.FormatUint(s.Revision+1, 10)
	}

	next := s.withConversation(s.Conversation.Append(
		model.NewUserMessage(id+"-q", ev.Query, ev.At),
		model.NewThinkingMessage(id+"-t", ThinkingText, ev.At),
	))
	next.Input = ""
	next.Loading = true
	next.RequestID = id

	return next, Resolve{RequestID: id, Query: ev.Query}
}

func resolved(s State, ev Resolved) (State, Effect) {
	if !s.awaiting(ev.RequestID) {
		return s, nil
	}

	sources := ev.Result.Sources
	if len(sources) == 0 {
		sources = search.PlaceholderSources()
	}
	answer := model.NewAnswerMessage(ev.RequestID+"-a", ev.Result.Content, sources, ev.At)

	return s.finish(answer), nil
}

func failed(s State, ev Failed) (State, Effect) {
	if !s.awaiting(ev.RequestID) {
		return s, nil
	}
	if search.IsCanceled(ev.Err) {
		return s.finish(), nil
	}
	return s.finish(model.NewErrorMessage(ev.RequestID+"-a", ErrorText, ev.At)), nil
}

func cancel(s State) (State, Effect) {
	if !s.Loading {
		return s, nil
	}
	id := s.RequestID
	return s.finish(), CancelRequest{RequestID: id}
}

func reset(s State, ev Clear) (State, Effect) {
	var eff Effect
	if s.Loading {
		eff = CancelRequest{RequestID: s.RequestID}
	}

	next := s.withConversation(model.NewConversation(greeting(ev.At)))
	next.Loading = false
	next.RequestID = ""
	return next, eff
}

// awaiting reports whether id is the in-flight request.
func (s State) awaiting(id string) bool {
	return s.Loading && id != "" && id == s.RequestID
}

// finish removes the placeholder, appends msgs and leaves the loading state.
func (s State) finish(msgs ...model.Message) State {
	next := s.withConversation(s.Conversation.WithoutThinking().Append(msgs...))
	next.Loading = false
	next.RequestID = ""
	return next
}
