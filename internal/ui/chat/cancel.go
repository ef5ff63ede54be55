// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"sync"
)

// =============================================================================
// CANCEL FUNCTION MANAGEMENT (THREAD-SAFE)
// =============================================================================

// cancelManager owns the cancel function of the in-flight search.
// It must be held by pointer so Bubble Tea's model copies share one mutex.
type cancelManager struct {
	mu         sync.Mutex
	requestID  string
	cancelFunc context.CancelFunc
}

func newCancelManager() *cancelManager {
	return &cancelManager{}
}

// set stores the cancel function for requestID, cancelling any previous one.
func (cm *cancelManager) set(requestID string, fn context.CancelFunc) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.cancelFunc != nil {
		cm.cancelFunc()
	}
	cm.requestID = requestID
	cm.cancelFunc = fn
}

// cancel cancels the stored context. Safe to call with nothing stored.
func (cm *cancelManager) cancel() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.cancelFunc != nil {
		cm.cancelFunc()
		cm.cancelFunc = nil
		cm.requestID = ""
	}
}

// release cancels the context only if it belongs to requestID. Used when a
// search finishes so its context is not leaked.
func (cm *cancelManager) release(requestID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.cancelFunc != nil && cm.requestID == requestID {
		cm.cancelFunc()
		cm.cancelFunc = nil
		cm.requestID = ""
	}
}

// pending returns the id of the request holding a context.
func (cm *cancelManager) pending() string {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.requestID
}
