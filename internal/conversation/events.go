// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/webqa/internal/search"
)

// =============================================================================
// EVENTS
// =============================================================================

// Event is an input to Update.
type Event interface {
	isEvent()
}

// Submit asks a question.
type Submit struct {
	Query     string
	RequestID string
	At        time.Time
}

// NewSubmit stamps a submit with a fresh request id and the current time.
func NewSubmit(query string) Submit {
	return Submit{
		Query:     query,
		RequestID: uuid.NewString(),
		At:        time.Now(),
	}
}

// Resolved delivers a successful answer.
type Resolved struct {
	RequestID string
	Result    search.Result
	At        time.Time
}

// Failed delivers a failed request.
type Failed struct {
	RequestID string
	Err       error
	At        time.Time
}

// Cancel drops the in-flight request.
type Cancel struct{}

// Clear resets the conversation to the greeting.
type Clear struct {
	At time.Time
}

// InputChanged mirrors the query field.
type InputChanged struct {
	Text string
}

// ToggleSettings opens or closes the settings panel.
type ToggleSettings struct{}

// APIKeyChanged mirrors the API key field.
type APIKeyChanged struct {
	Key string
}

func (Submit) isEvent()         {}
func (Resolved) isEvent()       {}
func (Failed) isEvent()         {}
func (Cancel) isEvent()         {}
func (Clear) isEvent()          {}
func (InputChanged) isEvent()   {}
func (ToggleSettings) isEvent() {}
func (APIKeyChanged) isEvent()  {}

// =============================================================================
// EFFECTS
// =============================================================================

// Effect is work Update asks the runtime to do. A nil Effect means nothing.
type Effect interface {
	isEffect()
}

// Resolve asks the runtime to resolve Query and report back with RequestID.
type Resolve struct {
	RequestID string
	Query     string
}

// CancelRequest asks the runtime to abandon RequestID.
type CancelRequest struct {
	RequestID string
}

func (Resolve) isEffect()       {}
func (CancelRequest) isEffect() {}
