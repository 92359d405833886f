// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

// Package ratelimit paces outbound calls to the upstream catalog.
//
// A Limiter never rejects a caller. Acquire blocks until a permit is
// available and only fails when the caller's context ends first.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/holocron/internal/metrics"
)

// Limiter hands out permits for outbound calls.
type Limiter interface {
	Acquire(ctx context.Context) error
}

// TokenBucket is a Limiter backed by golang.org/x/time/rate.
type TokenBucket struct {
	name    string
	limiter *rate.Limiter
}

// NewTokenBucket creates a bucket refilled at perSecond tokens per second
// holding at most burst tokens. The bucket starts full. Non-positive
// values fall back to one token per second with burst 1.
func NewTokenBucket(name string, perSecond float64, burst int) *TokenBucket {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &TokenBucket{
		name:    name,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Acquire blocks until a token is available or ctx is done.
func (tb *TokenBucket) Acquire(ctx context.Context) error {
	start := time.Now()
	err := tb.limiter.Wait(ctx)
	metrics.RecordRateLimitWait(tb.name, time.Since(start))
	if err != nil {
		return fmt.Errorf("%s rate limiter: %w", tb.name, err)
	}
	return nil
}

// Unlimited is a Limiter that never waits. Tests use it where pacing is not
// under test.
type Unlimited struct{}

// Acquire returns ctx.Err() and otherwise succeeds immediately.
func (Unlimited) Acquire(ctx context.Context) error {
	return ctx.Err()
}
