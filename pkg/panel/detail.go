// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package panel

import (
	"context"

	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/nodeclient"
	"github.com/luxfi/chaindash/pkg/poller"
	"github.com/luxfi/chaindash/pkg/units"
	"go.uber.org/zap"
)

// Role is the node's part in consensus.
type Role string

const (
	RoleUnknown   Role = "unknown"
	RoleEqualizer Role = "equalizer"
	RoleLight     Role = "light"
)

// DeriveRole is unknown until a height has been observed, then equalizer
// for a staking node and light otherwise.
func DeriveRole(height uint64, staking units.Amount) Role {
	switch {
	case height == 0:
		return RoleUnknown
	case staking.Sign() > 0:
		return RoleEqualizer
	default:
		return RoleLight
	}
}

// DetailSnapshot is what the chain detail panel shows.
type DetailSnapshot struct {
	Height         uint64       `json:"height" yaml:"height"`
	Round          uint64       `json:"round" yaml:"round"`
	Balance        units.Amount `json:"balance" yaml:"balance"`
	TotalSupply    units.Amount `json:"totalSupply" yaml:"totalSupply"`
	ExpectedReward units.Amount `json:"expectedReward" yaml:"expectedReward"`
	Staking        units.Amount `json:"staking" yaml:"staking"`
	Role           Role         `json:"role" yaml:"role"`
}

// ChainDetail is the statistics panel. Its four endpoints are polled
// independently; one failing or slow leaves only its own value stale.
type ChainDetail struct {
	opts Options
	lc   lifecycle

	status         nodeclient.EqualizeStatus
	balance        units.Amount
	totalSupply    units.Amount
	expectedReward units.Amount
	staking        units.Amount
}

func NewChainDetail(opts Options) *ChainDetail {
	return &ChainDetail{opts: opts.withDefaults()}
}

func (d *ChainDetail) Mount(ctx context.Context) {
	epoch, ok := d.lc.mount()
	if !ok {
		return
	}
	cancel := d.opts.Staking.Subscribe(func(a units.Amount) {
		d.lc.update(epoch, func() { d.staking = a })
	})
	d.lc.onUnmount(epoch, cancel)
	current := d.opts.Staking.Staking()
	d.lc.update(epoch, func() {
		d.status = nodeclient.EqualizeStatus{}
		d.balance = units.Zero
		d.totalSupply = units.Zero
		d.expectedReward = units.Zero
		d.staking = current
	})

	for _, fetch := range d.fetchers(epoch) {
		h := poller.Start(ctx, d.opts.Interval, fetch)
		d.lc.onUnmount(epoch, h.Stop)
	}
}

func (d *ChainDetail) Unmount() {
	d.lc.unmount()
}

// fetchers returns one poll per endpoint. Each runs on its own poller so a
// slow endpoint never delays the others.
func (d *ChainDetail) fetchers(epoch uint64) []poller.Effect {
	c := d.opts.Client
	amount := func(path string, get func(context.Context) (units.Amount, error), dst *units.Amount) poller.Effect {
		return func(ctx context.Context) {
			a, err := get(ctx)
			if err != nil {
				d.opts.Log.Debug("chain detail poll failed", zap.String("path", path), zap.Error(err))
				return
			}
			d.lc.update(epoch, func() { *dst = a })
		}
	}
	return []poller.Effect{
		func(ctx context.Context) {
			s, err := c.EqualizeStatus(ctx)
			if err != nil {
				d.opts.Log.Debug("chain detail poll failed", zap.String("path", constants.PathEqualizeStatus), zap.Error(err))
				return
			}
			d.lc.update(epoch, func() { d.status = s })
		},
		amount(constants.PathBalance, c.Balance, &d.balance),
		amount(constants.PathTotalSupply, c.TotalSupply, &d.totalSupply),
		amount(constants.PathExpectedReward, c.ExpectedReward, &d.expectedReward),
	}
}

func (d *ChainDetail) Snapshot() DetailSnapshot {
	d.lc.mu.Lock()
	defer d.lc.mu.Unlock()
	return DetailSnapshot{
		Height:         d.status.Height,
		Round:          d.status.Round,
		Balance:        d.balance,
		TotalSupply:    d.totalSupply,
		ExpectedReward: d.expectedReward,
		Staking:        d.staking,
		Role:           DeriveRole(d.status.Height, d.staking),
	}
}
