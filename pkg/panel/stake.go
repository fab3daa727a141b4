// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package panel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/luxfi/chaindash/pkg/format"
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/poller"
	"github.com/luxfi/chaindash/pkg/units"
	"go.uber.org/zap"
)

const (
	PromptStake   = "Please enter the amount to stake."
	PromptUnstake = "Please enter the amount to unstake."
)

// StakeSnapshot is what the staking panel shows.
type StakeSnapshot struct {
	Staking      units.Amount `json:"staking" yaml:"staking"`
	TotalStaking units.Amount `json:"totalStaking" yaml:"totalStaking"`
	// Rate is the formatted power rate, "-" while the total is zero.
	Rate string `json:"rate" yaml:"rate"`
}

type transfer struct {
	name        string
	prompt      string
	nonPositive string
	submit      func(ctx context.Context, amount units.Amount) (json.RawMessage, error)
}

// StakeControl is the staking panel: the node's staked amount, its share
// of the network total and the stake/unstake actions.
type StakeControl struct {
	opts Options
	lc   lifecycle

	staking      units.Amount
	totalStaking units.Amount

	stake   transfer
	unstake transfer
}

func NewStakeControl(opts Options) *StakeControl {
	opts = opts.withDefaults()
	s := &StakeControl{opts: opts}
	s.stake = transfer{
		name:        "stake",
		prompt:      PromptStake,
		nonPositive: MsgStakeNotPositive,
		submit:      opts.Client.Stake,
	}
	s.unstake = transfer{
		name:        "unstake",
		prompt:      PromptUnstake,
		nonPositive: MsgUnstakeNotPositive,
		submit:      opts.Client.Unstake,
	}
	return s
}

// Mount subscribes to the staking store and starts polling the network
// total. Mounting twice is a no-op.
func (s *StakeControl) Mount(ctx context.Context) {
	epoch, ok := s.lc.mount()
	if !ok {
		return
	}
	cancel := s.opts.Staking.Subscribe(func(a units.Amount) {
		s.lc.update(epoch, func() { s.staking = a })
	})
	s.lc.onUnmount(epoch, cancel)
	current := s.opts.Staking.Staking()
	s.lc.update(epoch, func() {
		s.staking = current
		s.totalStaking = units.Zero
	})

	h := poller.Start(ctx, s.opts.Interval, func(ctx context.Context) {
		s.refresh(ctx, epoch)
	})
	s.lc.onUnmount(epoch, h.Stop)
}

// Unmount stops polling and drops the store subscription. It returns once
// no further state updates can happen.
func (s *StakeControl) Unmount() {
	s.lc.unmount()
}

func (s *StakeControl) refresh(ctx context.Context, epoch uint64) {
	total, err := s.opts.Client.TotalStaking(ctx)
	if err != nil {
		s.opts.Log.Debug("total staking poll failed", zap.Error(err))
		return
	}
	s.lc.update(epoch, func() { s.totalStaking = total })
}

func (s *StakeControl) Snapshot() StakeSnapshot {
	s.lc.mu.Lock()
	defer s.lc.mu.Unlock()
	return StakeSnapshot{
		Staking:      s.staking,
		TotalStaking: s.totalStaking,
		Rate:         format.Rate(s.staking, s.totalStaking),
	}
}

// Stake prompts for an amount and submits it.
func (s *StakeControl) Stake(ctx context.Context) error {
	return s.promptAndSubmit(ctx, s.stake)
}

// Unstake prompts for an amount and withdraws it.
func (s *StakeControl) Unstake(ctx context.Context) error {
	return s.promptAndSubmit(ctx, s.unstake)
}

// StakeAmount validates and submits raw without prompting.
func (s *StakeControl) StakeAmount(ctx context.Context, raw string) error {
	return s.submit(ctx, s.stake, raw)
}

// UnstakeAmount validates and withdraws raw without prompting.
func (s *StakeControl) UnstakeAmount(ctx context.Context, raw string) error {
	return s.submit(ctx, s.unstake, raw)
}

func (s *StakeControl) promptAndSubmit(ctx context.Context, t transfer) error {
	res, err := s.opts.Prompter.CaptureString(t.prompt)
	if err != nil {
		return fmt.Errorf("%s prompt: %w", t.name, err)
	}
	raw, ok := res.Value()
	if !ok {
		s.opts.Log.Debug("prompt cancelled", zap.String("action", t.name))
		return nil
	}
	return s.submit(ctx, t, raw)
}

func (s *StakeControl) submit(ctx context.Context, t transfer, raw string) error {
	amount, err := parseAmount(raw)
	if err != nil {
		msg := MsgInvalidInput
		if errors.Is(err, ErrNonPositiveAmount) {
			msg = t.nonPositive
		}
		s.opts.Notifier.Notify(notify.Error, msg)
		return err
	}

	resp, postErr := t.submit(ctx, amount)
	if postErr != nil {
		uerr := unknown(postErr)
		s.opts.Log.Warn(t.name+" failed", zap.Int("status", uerr.StatusCode), zap.Error(postErr))
		s.opts.Notifier.Notify(notify.Error, uerr.Message())
		return uerr
	}
	s.opts.Log.Info(t.name+" submitted",
		zap.String("amount", amount.Hex()),
		zap.ByteString("response", resp),
	)
	return nil
}

// parseAmount turns user input into base units. Anything that is not a
// finite decimal, or that needs more than 18 fractional digits, is invalid.
func parseAmount(raw string) (units.Amount, *ValidationError) {
	tokens, err := units.ParseTokens(raw)
	if err != nil {
		return units.Zero, &ValidationError{Input: raw, Err: ErrInvalidInput}
	}
	if tokens.Sign() <= 0 {
		return units.Zero, &ValidationError{Input: raw, Err: ErrNonPositiveAmount}
	}
	amount, err := units.FromTokens(tokens)
	if err != nil {
		return units.Zero, &ValidationError{Input: raw, Err: ErrInvalidInput}
	}
	return amount, nil
}
