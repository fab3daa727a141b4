// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package minercmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/luxfi/chaindash/pkg/application"
	"github.com/luxfi/chaindash/pkg/panel"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/spf13/cobra"
)

var passwordFile string

func newStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start mining",
		Long: `Start mining. The node's password is prompted for, or read from the
file named by --password-file (a trailing newline is ignored).`,
		Args: cobra.NoArgs,
		RunE: runStart,
	}
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read the node password from this file")
	return cmd
}

func readPassword() (string, bool, error) {
	if passwordFile != "" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", false, fmt.Errorf("failed to read password file: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), true, nil
	}
	res, err := app.Prompt.CapturePassword(panel.PromptMiningPassword)
	if err != nil {
		return "", false, err
	}
	password, ok := res.Value()
	return password, ok, nil
}

func runStart(cmd *cobra.Command, _ []string) error {
	password, ok, err := readPassword()
	if err != nil {
		return err
	}
	if !ok {
		ux.Logger.PrintToUser("Cancelled.")
		return nil
	}

	session := app.NewSession(nil, application.ConsoleNotifier(ux.Logger))
	if err := session.Chain.Miner().StartWithPassword(cmd.Context(), password); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Mining started")
	return nil
}

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop mining",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.NewSession(nil, application.ConsoleNotifier(ux.Logger))
			if err := session.Chain.Miner().Stop(cmd.Context()); err != nil {
				return err
			}
			ux.Logger.GreenCheckmarkToUser("Mining stopped")
			return nil
		},
	}
}
