// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package store holds the node's own staked amount, shared read-only by the
// panels that display it.
package store

import (
	"sync"

	"github.com/luxfi/chaindash/pkg/units"
)

// Staking is the read side of the staking store.
type Staking interface {
	Staking() units.Amount
	// Subscribe registers fn to be called with every new value. The
	// returned cancel func is idempotent.
	Subscribe(fn func(units.Amount)) (cancel func())
}

// Value is the concrete store. Only its owner calls Set.
type Value struct {
	mu     sync.Mutex
	amount units.Amount
	nextID int
	subs   map[int]func(units.Amount)
}

var _ Staking = (*Value)(nil)

func NewValue(initial units.Amount) *Value {
	return &Value{
		amount: initial,
		subs:   make(map[int]func(units.Amount)),
	}
}

func (v *Value) Staking() units.Amount {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.amount
}

// Set stores amount and notifies subscribers when it changed. Subscribers
// run on the caller's goroutine, outside the lock.
func (v *Value) Set(amount units.Amount) {
	v.mu.Lock()
	if v.amount.Equal(amount) {
		v.mu.Unlock()
		return
	}
	v.amount = amount
	fns := make([]func(units.Amount), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(amount)
	}
}

func (v *Value) Subscribe(fn func(units.Amount)) func() {
	v.mu.Lock()
	if v.subs == nil {
		v.subs = make(map[int]func(units.Amount))
	}
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

// Subscribers reports how many subscriptions are live.
func (v *Value) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}
