// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/holocron/internal/metrics"
)

func TestTokenBucket_BurstIsImmediate(t *testing.T) {
	tb := NewTokenBucket("test-burst", 5, 5)

	start := time.Now()
	for i := 0; i < 5; i++ {
		if err := tb.Acquire(context.Background()); err != nil {
			t.Fatalf("Acquire() #%d error = %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("burst of 5 took %v, want near zero", elapsed)
	}
}

func TestTokenBucket_PacesBeyondBurst(t *testing.T) {
	tb := NewTokenBucket("test-pace", 5, 5)

	for i := 0; i < 5; i++ {
		_ = tb.Acquire(context.Background())
	}

	// One token every 200ms once the bucket is empty.
	start := time.Now()
	if err := tb.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("sixth Acquire() returned after %v, want about 200ms", elapsed)
	}
}

func TestTokenBucket_ConcurrentCallersAllServed(t *testing.T) {
	tb := NewTokenBucket("test-concurrent", 50, 2)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- tb.Acquire(context.Background())
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("Acquire() error = %v, want every caller served", err)
		}
	}
}

func TestTokenBucket_CanceledContext(t *testing.T) {
	tb := NewTokenBucket("test-cancel", 1, 1)
	_ = tb.Acquire(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tb.Acquire(ctx)
	if err == nil {
		t.Fatal("Acquire() with canceled context should fail")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestTokenBucket_DeadlineShorterThanWait(t *testing.T) {
	tb := NewTokenBucket("test-deadline", 1, 1)
	_ = tb.Acquire(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	if err := tb.Acquire(ctx); err == nil {
		t.Fatal("Acquire() should fail when the next token is beyond the deadline")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Acquire() blocked %v, want prompt failure", elapsed)
	}
}

func TestTokenBucket_Defaults(t *testing.T) {
	tb := NewTokenBucket("test-defaults", 0, 0)
	if got := tb.limiter.Limit(); got != 1 {
		t.Errorf("Limit() = %v, want 1", got)
	}
	if got := tb.limiter.Burst(); got != 1 {
		t.Errorf("Burst() = %d, want 1", got)
	}
	if tb.name != "test-defaults" {
		t.Errorf("name = %q", tb.name)
	}
}

func TestTokenBucket_RecordsWait(t *testing.T) {
	tb := NewTokenBucket("test-metrics", 100, 1)

	before := testutil.CollectAndCount(metrics.RateLimitWait)
	_ = tb.Acquire(context.Background())
	after := testutil.CollectAndCount(metrics.RateLimitWait)

	if after < before || after == 0 {
		t.Errorf("RateLimitWait series = %d (before %d), want the test-metrics series present", after, before)
	}
}

func TestUnlimited(t *testing.T) {
	var l Limiter = Unlimited{}
	if err := l.Acquire(context.Background()); err != nil {
		t.Errorf("Acquire() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Acquire(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Acquire() error = %v, want context.Canceled", err)
	}
}
