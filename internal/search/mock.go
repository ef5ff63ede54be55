// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"context"
	"time"
)

// DefaultDelay is the simulated search latency.
const DefaultDelay = 1000 * time.Millisecond

// MockResolver simulates a web search: it waits for a fixed delay and then
// answers from the keyword rule table. It never fails on its own.
type MockResolver struct {
	delay time.Duration
}

// MockOption configures a MockResolver.
type MockOption func(*MockResolver)

// WithDelay sets the simulated latency. Zero or negative disables the wait.
func WithDelay(d time.Duration) MockOption {
	return func(r *MockResolver) {
		r.delay = d
	}
}

// NewMockResolver creates a resolver with DefaultDelay unless overridden.
func NewMockResolver(opts ...MockOption) *MockResolver {
	r := &MockResolver{delay: DefaultDelay}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Delay returns the configured latency.
func (r *MockResolver) Delay() time.Duration {
	return r.delay
}

// Resolve waits for the configured delay, then answers query.
func (r *MockResolver) Resolve(ctx context.Context, query string) (Result, error) {
	if err := sleep(ctx, r.delay); err != nil {
		return Result{}, err
	}
	return Answer(query), nil
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
