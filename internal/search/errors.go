// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"context"
	"errors"
	"time"
)

// ============================================================================
// ERROR TYPES
// ============================================================================

// ErrSearchFailure is the single failure kind a search can report.
var ErrSearchFailure = errors.New("search failed")

// Error is a search failure for one query.
type Error struct {
	Query string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "search failed: " + e.Err.Error()
	}
	return "search failed"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every *Error match ErrSearchFailure.
func (e *Error) Is(target error) bool {
	return target == ErrSearchFailure
}

// Fail wraps cause as a search failure for query.
func Fail(query string, cause error) error {
	return &Error{Query: query, Err: cause}
}

// IsCanceled reports whether err means the caller gave up on the request.
// Cancellation is not a failure and produces no error message.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// ============================================================================
// FAILING PROVIDER
// ============================================================================

// FailingProvider always fails after Delay. It stands in for an unreachable
// backend when exercising the error path.
type FailingProvider struct {
	Delay time.Duration
	Err   error
}

// Resolve waits for Delay and returns a search failure.
func (p FailingProvider) Resolve(ctx context.Context, query string) (Result, error) {
	if err := sleep(ctx, p.Delay); err != nil {
		return Result{}, err
	}
	cause := p.Err
	if cause == nil {
		cause = errors.New("backend unavailable")
	}
	return Result{}, Fail(query, cause)
}
