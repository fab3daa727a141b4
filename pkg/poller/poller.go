// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package poller runs an effect immediately and then at a fixed interval
// until stopped.
package poller

import (
	"context"
	"sync"
	"time"
)

// Effect is one poll. ctx is cancelled when the poller stops.
type Effect func(ctx context.Context)

// Handle controls a running poller.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start launches effect on its own goroutine. Effects never overlap: ticks
// that fire while an effect is still running are dropped.
func Start(ctx context.Context, interval time.Duration, effect Effect) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go h.run(ctx, interval, effect)
	return h
}

func (h *Handle) run(ctx context.Context, interval time.Duration, effect Effect) {
	defer close(h.done)

	effect(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// a tick can win the select after cancel; do not run then
			if ctx.Err() != nil {
				return
			}
			effect(ctx)
		}
	}
}

// Stop cancels the poller and waits for a running effect to return. After
// Stop returns the effect is never invoked again. Stop is idempotent.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed once the poller goroutine has exited, either through Stop
// or through cancellation of the parent context.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
