// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package minercmd shows and switches the node's miner.
package minercmd

import (
	"fmt"

	"github.com/luxfi/chaindash/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Chaindash

func NewCmd(injectedApp *application.Chaindash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "miner",
		Short: "Show, start and stop the node's miner",
		Long: `The miner commands report the miner status and start or stop mining.
Starting requires the node's password.`,
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newStartCmd())
	cmd.AddCommand(newStopCmd())
	return cmd
}
