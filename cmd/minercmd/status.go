// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package minercmd

import (
	"fmt"
	"strconv"

	"github.com/luxfi/chaindash/pkg/panel"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the miner status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := app.NewClient().MinerStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read miner status: %w", err)
			}
			status := panel.DeriveMinerStatus(state)
			ux.Logger.PrintKeyValues([2]string{"Miner", "Value"}, [][2]string{
				{"Status", status.Label()},
				{"Mining", strconv.FormatBool(state.Mining)},
				{"Ready", strconv.FormatBool(state.Ready)},
			})
			return nil
		},
	}
}
