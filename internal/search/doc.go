// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package search turns a query into an answer.
//
// The Provider interface is the only thing the conversation controller knows
// about. MockResolver is the built-in implementation: it waits for a fixed
// delay and then picks one of four canned answers by keyword.
//
// Keyword rules are checked in order, first match wins:
//
//	weather -> weather answer
//	news    -> news answer
//	tech    -> technology answer
//	(none)  -> default answer quoting the query
//
// Providers compose: Throttle adds a token-bucket limiter in front of any
// provider and WithLogging records latency and outcome.
//
// Failures are reported as *Error, which matches ErrSearchFailure with
// errors.Is. A cancelled context is returned as-is and is not a failure.
package search
