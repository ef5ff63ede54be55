// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"context"
	"time"

	"github.com/jeranaias/webqa/internal/search"
)

// Ask runs one complete submit/resolve cycle against p, blocking until the
// provider returns. It is the line-mode counterpart of the TUI runtime.
//
// The returned error is the provider's error, if any. The returned state
// already reflects it (an error message, or nothing on cancellation).
func Ask(ctx context.Context, p search.Provider, s State, query string) (State, error) {
	s, eff := Update(s, NewSubmit(query))
	req, ok := eff.(Resolve)
	if !ok {
		return s, nil
	}

	res, err := p.Resolve(ctx, req.Query)
	if err != nil {
		s, _ = Update(s, Failed{RequestID: req.RequestID, Err: err, At: time.Now()})
		return s, err
	}

	s, _ = Update(s, Resolved{RequestID: req.RequestID, Result: res, At: time.Now()})
	return s, nil
}
