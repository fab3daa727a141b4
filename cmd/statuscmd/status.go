// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package statuscmd prints a one-shot snapshot of every dashboard panel
package statuscmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/luxfi/chaindash/pkg/application"
	"github.com/luxfi/chaindash/pkg/status"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	app *application.Chaindash

	statusFlags struct {
		output string
		watch  time.Duration
	}

	// progressWriter is where the spinner goes; it is only animated on a TTY.
	progressWriter io.Writer = os.Stderr
)

func NewCmd(injectedApp *application.Chaindash) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show staking, miner and chain statistics",
		Long:    "Query every node endpoint the dashboard uses and print one snapshot.",
		Aliases: []string{"info"},
		Args:    cobra.NoArgs,
		RunE:    statusCmd,
	}
	cmd.Flags().StringVarP(&statusFlags.output, "output", "o", status.OutputTable, "output format: table, json or yaml")
	cmd.Flags().DurationVarP(&statusFlags.watch, "watch", "w", 0, "repeat every interval until interrupted")
	return cmd
}

func statusCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc := status.NewStatusService(app.NewClient(), app.Conf.StakingPath)
	formatter := status.NewStatusFormatter(ux.Logger.Writer(), app.Conf.TokenSymbol, app.Conf.DisplayDecimals)

	if statusFlags.watch <= 0 {
		return printOnce(ctx, svc, formatter, statusFlags.output == status.OutputTable)
	}

	ticker := time.NewTicker(statusFlags.watch)
	defer ticker.Stop()
	for {
		if err := printOnce(ctx, svc, formatter, false); err != nil && !errors.Is(err, status.ErrNodeUnreachable) {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			ux.Logger.PrintLineSeparator()
		}
	}
}

func printOnce(ctx context.Context, svc *status.StatusService, formatter *status.StatusFormatter, progress bool) error {
	var tracker *status.ProgressTracker
	if progress {
		tracker = status.NewProgressTracker(progressWriter)
		tracker.StartStep("Querying " + app.Conf.Address())
	}

	result, err := svc.GetStatus(ctx)
	if tracker != nil {
		if err != nil {
			tracker.FailStep("Querying "+app.Conf.Address(), err)
		} else {
			tracker.CompleteStep("Querying " + app.Conf.Address())
		}
		if result != nil && !result.Healthy() {
			tracker.PrintWarning("some endpoints did not answer; their values are shown as zero")
		}
	}
	if result == nil {
		return err
	}

	if ferr := formatter.Format(statusFlags.output, result); ferr != nil {
		return fmt.Errorf("failed to format status: %w", ferr)
	}
	return err
}
