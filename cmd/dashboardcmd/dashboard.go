// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dashboardcmd runs the live terminal dashboard.
package dashboardcmd

import (
	"errors"
	"os"

	"github.com/luxfi/chaindash/pkg/application"
	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/dashboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var app *application.Chaindash

var errNotTerminal = errors.New("the dashboard needs a terminal; use `chaindash status --watch` for plain output")

func NewCmd(injectedApp *application.Chaindash) *cobra.Command {
	app = injectedApp
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the live terminal dashboard",
		Long: `Open the live dashboard: staked amount and power rate on top, the miner
toggle and the chain statistics below. Values refresh every poll interval.

Keys:
  s  stake
  u  unstake
  m  start or stop mining
  q  quit`,
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			constants.AnnotationFullscreen: "true",
		},
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	ctx := cmd.Context()

	bridge := dashboard.NewBridge()
	session := app.NewSession(bridge, bridge)
	session.Start(ctx)
	defer session.Stop()

	return dashboard.Run(ctx, dashboard.ChainPanels(session.Chain), bridge, dashboard.Options{
		Node:          app.Conf.Address(),
		Symbol:        app.Conf.TokenSymbol,
		Decimals:      app.Conf.DisplayDecimals,
		AnimationRate: app.Conf.AnimationRate,
		Log:           app.Log.Named("dashboard"),
	}, os.Stdin, os.Stdout)
}
