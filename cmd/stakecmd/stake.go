// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stakecmd moves tokens into and out of the node's stake.
package stakecmd

import (
	"context"
	"regexp"
	"strings"

	"github.com/luxfi/chaindash/pkg/application"
	"github.com/luxfi/chaindash/pkg/format"
	"github.com/luxfi/chaindash/pkg/panel"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/spf13/cobra"
)

var app *application.Chaindash

type transfer struct {
	verb   string
	prompt string
	submit func(s *panel.StakeControl, ctx context.Context, raw string) error
}

var (
	stakeTransfer = transfer{
		verb:   "Staked",
		prompt: panel.PromptStake,
		submit: (*panel.StakeControl).StakeAmount,
	}
	unstakeTransfer = transfer{
		verb:   "Unstaked",
		prompt: panel.PromptUnstake,
		submit: (*panel.StakeControl).UnstakeAmount,
	}
)

func NewStakeCmd(injectedApp *application.Chaindash) *cobra.Command {
	app = injectedApp
	return &cobra.Command{
		Use:   "stake [amount]",
		Short: "Stake tokens from the node's balance",
		Long: `Stake an amount of whole tokens. Fractions down to 18 decimal places are
accepted. Without an argument the amount is prompted for.

Example:
  chaindash stake 12.5
  chaindash stake -- -1   (amounts starting with "-" follow "--")`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), stakeTransfer, args)
		},
	}
}

func NewUnstakeCmd(injectedApp *application.Chaindash) *cobra.Command {
	app = injectedApp
	return &cobra.Command{
		Use:   "unstake [amount]",
		Short: "Withdraw tokens from the node's stake",
		Long: `Unstake an amount of whole tokens. Without an argument the amount is
prompted for.

Example:
  chaindash unstake 2
  chaindash unstake -- -1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), unstakeTransfer, args)
		},
	}
}

var negativeNumber = regexp.MustCompile(`^-[0-9.]`)

// AmountArgs rewrites a command line so a negative amount given to stake or
// unstake reaches validation instead of being read as a shorthand flag. The
// amount is moved behind "--" at the end, after any flags.
func AmountArgs(args []string) []string {
	sub := -1
	for i, a := range args {
		if a == "--" {
			return args
		}
		if sub < 0 && (a == "stake" || a == "unstake") {
			sub = i
		}
	}
	if sub < 0 {
		return args
	}
	for i := sub + 1; i < len(args); i++ {
		if negativeNumber.MatchString(args[i]) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, args[i+1:]...)
			return append(out, "--", args[i])
		}
	}
	return args
}

func run(ctx context.Context, t transfer, args []string) error {
	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		res, err := app.Prompt.CaptureString(t.prompt)
		if err != nil {
			return err
		}
		v, ok := res.Value()
		if !ok {
			ux.Logger.PrintToUser("Cancelled.")
			return nil
		}
		raw = v
	}

	session := app.NewSession(nil, application.ConsoleNotifier(ux.Logger))
	if err := t.submit(session.Chain.Stake(), ctx, raw); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("%s %s", t.verb, format.WithSymbol(strings.TrimSpace(raw), app.Conf.TokenSymbol))
	return nil
}
