// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation implements the question/answer cycle as a pure
// reducer.
//
// State is an immutable snapshot. Update takes a snapshot and an Event and
// returns the next snapshot plus an optional Effect for the runtime to carry
// out. Update never performs I/O, never reads the clock and never generates
// ids: everything it needs arrives on the event.
//
// A submit produces a Resolve effect. The runtime resolves the query and feeds
// the outcome back as Resolved or Failed carrying the same RequestID.
// Completions for any other request id are ignored.
package conversation
