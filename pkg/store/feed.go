// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"context"
	"sync"
	"time"

	"github.com/luxfi/chaindash/pkg/nodeclient"
	"github.com/luxfi/chaindash/pkg/poller"
	"go.uber.org/zap"
)

// Feed keeps a Value fresh by polling the node's staking endpoint.
type Feed struct {
	client   *nodeclient.Client
	path     string
	interval time.Duration
	value    *Value
	log      *zap.Logger

	mu     sync.Mutex
	handle *poller.Handle
}

func NewFeed(client *nodeclient.Client, path string, interval time.Duration, value *Value, log *zap.Logger) *Feed {
	if log == nil {
		log = zap.NewNop()
	}
	return &Feed{
		client:   client,
		path:     path,
		interval: interval,
		value:    value,
		log:      log,
	}
}

func (f *Feed) Value() *Value {
	return f.value
}

// Start begins polling. Calling Start on a running feed is a no-op; a feed
// whose parent context was cancelled starts again.
func (f *Feed) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.handle != nil {
		select {
		case <-f.handle.Done():
		default:
			return
		}
	}
	f.handle = poller.Start(ctx, f.interval, f.poll)
}

// Stop halts polling and waits for an in-flight request to finish.
func (f *Feed) Stop() {
	f.mu.Lock()
	h := f.handle
	f.handle = nil
	f.mu.Unlock()
	if h != nil {
		h.Stop()
	}
}

func (f *Feed) poll(ctx context.Context) {
	amount, err := f.client.Staking(ctx, f.path)
	if err != nil {
		f.log.Debug("staking poll failed", zap.String("path", f.path), zap.Error(err))
		return
	}
	f.value.Set(amount)
}
