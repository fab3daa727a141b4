// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package panel implements the Chain dashboard panels as presentation
// models: each one polls the node while mounted, keeps its own state and
// exposes the user actions bound to its controls.
package panel

import (
	"sync"
	"time"

	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/nodeclient"
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/prompts"
	"github.com/luxfi/chaindash/pkg/store"
	"github.com/luxfi/chaindash/pkg/units"
	"go.uber.org/zap"
)

// Options are the collaborators shared by every panel.
type Options struct {
	Client   *nodeclient.Client
	Prompter prompts.Prompter
	Notifier notify.Notifier
	Staking  store.Staking
	Interval time.Duration
	Log      *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Notifier == nil {
		o.Notifier = notify.Discard
	}
	if o.Prompter == nil {
		o.Prompter = prompts.NewNonInteractivePrompter()
	}
	if o.Staking == nil {
		o.Staking = store.NewValue(units.Zero)
	}
	if o.Interval <= 0 {
		o.Interval = constants.DefaultPollInterval
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	return o
}

// lifecycle tracks whether a panel is mounted. Every mount starts a new
// epoch; updates tagged with an older epoch are discarded, so a response
// that lands after Unmount never touches state.
type lifecycle struct {
	mu      sync.Mutex
	mounted bool
	epoch   uint64
	stops   []func()
}

// mount returns the new epoch, or false when already mounted.
func (l *lifecycle) mount() (uint64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.mounted {
		return 0, false
	}
	l.mounted = true
	l.epoch++
	return l.epoch, true
}

// onUnmount registers a teardown step for the given epoch. If that epoch is
// already over, fn runs right away.
func (l *lifecycle) onUnmount(epoch uint64, fn func()) {
	l.mu.Lock()
	if l.mounted && l.epoch == epoch {
		l.stops = append(l.stops, fn)
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	fn()
}

// unmount ends the epoch and runs teardown steps in reverse order.
func (l *lifecycle) unmount() {
	l.mu.Lock()
	if !l.mounted {
		l.mu.Unlock()
		return
	}
	l.mounted = false
	l.epoch++
	stops := l.stops
	l.stops = nil
	l.mu.Unlock()

	for i := len(stops) - 1; i >= 0; i-- {
		stops[i]()
	}
}

// update applies fn under the lock if epoch is still current.
func (l *lifecycle) update(epoch uint64, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.mounted || l.epoch != epoch {
		return false
	}
	fn()
	return true
}

func (l *lifecycle) isMounted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mounted
}
