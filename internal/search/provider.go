// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

import (
	"context"
)

// Result is the answer to a single query.
type Result struct {
	// Content is the answer text.
	Content string

	// Sources are the citation labels shown under the answer.
	Sources []string

	// Rule names the keyword rule that produced the answer, if any.
	Rule string
}

// Provider resolves a query into a Result.
//
// Implementations must return promptly once ctx is done, returning ctx.Err().
type Provider interface {
	Resolve(ctx context.Context, query string) (Result, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, query string) (Result, error)

// Resolve calls f(ctx, query).
func (f ProviderFunc) Resolve(ctx context.Context, query string) (Result, error) {
	return f(ctx, query)
}
