// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package servecmd relays the dashboard to browsers and scripts.
package servecmd

import (
	"context"

	"github.com/luxfi/chaindash/pkg/application"
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/prompts"
	"github.com/luxfi/chaindash/pkg/relay"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	app    *application.Chaindash
	listen string
)

func NewCmd(injectedApp *application.Chaindash) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP and websocket",
		Long: `Keep the dashboard panels polling and serve them:

  GET /api/chain   current snapshot as JSON
  GET /health      liveness and subscriber count
  GET /ws          websocket stream, one snapshot per poll interval

The relay is read-only; staking and mining actions are not exposed.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (default from relay.listen)")
	return cmd
}

func listenAddr() string {
	if listen != "" {
		return listen
	}
	return app.Conf.RelayListen
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	session := app.NewSession(prompts.NewNonInteractivePrompter(), notify.Discard)
	session.Start(ctx)
	defer session.Stop()

	srv := relay.New(session.Chain, app.Conf.PollInterval, app.Log.Named("relay"))
	if err := srv.Listen(ctx, listenAddr()); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Relaying %s on http://%s", app.Conf.Address(), srv.Addr())

	<-ctx.Done()
	// the command context is already cancelled
	return srv.Shutdown(context.Background())
}
