// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"context"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ============================================================================
// THROTTLE
// ============================================================================

// Throttle makes every call to p wait on limiter first. A nil limiter returns
// p unchanged.
func Throttle(p Provider, limiter *rate.Limiter) Provider {
	if limiter == nil {
		return p
	}
	return &throttled{next: p, limiter: limiter}
}

type throttled struct {
	next    Provider
	limiter *rate.Limiter
}

func (t *throttled) Resolve(ctx context.Context, query string) (Result, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		return Result{}, Fail(query, err)
	}
	return t.next.Resolve(ctx, query)
}

// NewLimiter builds a limiter allowing perSecond calls with the given burst.
// perSecond <= 0 disables limiting and returns nil.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// ============================================================================
// LOGGING
// ============================================================================

// WithLogging records latency and outcome of every call to p. A nil logger
// returns p unchanged.
func WithLogging(p Provider, logger *zap.Logger) Provider {
	if logger == nil {
		return p
	}
	return ProviderFunc(func(ctx context.Context, query string) (Result, error) {
		start := time.Now()
		res, err := p.Resolve(ctx, query)

		fields := []zap.Field{
			zap.Int("query_len", utf8.RuneCountInString(query)),
			zap.Duration("latency", time.Since(start)),
		}
		switch {
		case err == nil:
			logger.Info("search resolved", append(fields, zap.String("rule", res.Rule))...)
		case IsCanceled(err):
			logger.Debug("search canceled", fields...)
		default:
			logger.Warn("search failed", append(fields, zap.Error(err))...)
		}
		return res, err
	})
}
