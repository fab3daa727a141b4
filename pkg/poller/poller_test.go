// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunsImmediately(t *testing.T) {
	called := make(chan struct{}, 1)
	h := Start(context.Background(), time.Hour, func(context.Context) {
		select {
		case called <- struct{}{}:
		default:
		}
	})
	defer h.Stop()

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("effect was not invoked immediately")
	}
}

func TestRepeatsAtInterval(t *testing.T) {
	var calls atomic.Int32
	h := Start(context.Background(), 10*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	h.Stop()
}

func TestNoCallsAfterStop(t *testing.T) {
	var calls atomic.Int32
	h := Start(context.Background(), time.Millisecond, func(context.Context) {
		calls.Add(1)
	})
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	h.Stop()

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, after, calls.Load())

	// second Stop must not block or panic
	h.Stop()
}

func TestEffectsDoNotOverlap(t *testing.T) {
	var running, overlaps atomic.Int32
	h := Start(context.Background(), time.Millisecond, func(ctx context.Context) {
		if running.Add(1) > 1 {
			overlaps.Add(1)
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
	})
	time.Sleep(40 * time.Millisecond)
	h.Stop()
	require.Zero(t, overlaps.Load())
}

func TestStopCancelsEffectContext(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})
	h := Start(context.Background(), time.Hour, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		close(cancelled)
	})
	<-started
	h.Stop()

	select {
	case <-cancelled:
	default:
		t.Fatal("Stop returned before the running effect observed cancellation")
	}
}

func TestParentCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := Start(ctx, time.Millisecond, func(context.Context) {})
	cancel()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("poller kept running after parent cancel")
	}
	h.Stop()
}
