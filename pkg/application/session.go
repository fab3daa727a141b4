// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"context"

	"github.com/luxfi/chaindash/pkg/nodeclient"
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/panel"
	"github.com/luxfi/chaindash/pkg/prompts"
	"github.com/luxfi/chaindash/pkg/store"
	"github.com/luxfi/chaindash/pkg/units"
)

// Session wires one Chain panel to the node: a client, the staking store
// and the feed that keeps it fresh.
type Session struct {
	Client  *nodeclient.Client
	Staking *store.Value
	Feed    *store.Feed
	Chain   *panel.Chain
}

// NewSession builds a session. A nil prompter falls back to the app's.
func (app *Chaindash) NewSession(prompter prompts.Prompter, notifier notify.Notifier) *Session {
	if prompter == nil {
		prompter = app.Prompt
	}
	client := app.NewClient()
	staking := store.NewValue(units.Zero)
	return &Session{
		Client:  client,
		Staking: staking,
		Feed:    store.NewFeed(client, app.Conf.StakingPath, app.Conf.PollInterval, staking, app.Log.Named("store")),
		Chain: panel.NewChain(panel.Options{
			Client:   client,
			Prompter: prompter,
			Notifier: notifier,
			Staking:  staking,
			Interval: app.Conf.PollInterval,
			Log:      app.Log.Named("panel"),
		}),
	}
}

// Start begins feeding the store and mounts the panels.
func (s *Session) Start(ctx context.Context) {
	s.Feed.Start(ctx)
	s.Chain.Mount(ctx)
}

// Stop unmounts the panels and stops the feed.
func (s *Session) Stop() {
	s.Chain.Unmount()
	s.Feed.Stop()
}
