// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package panel

import "context"

// ChainSnapshot is the whole dashboard at one instant. The three parts are
// polled independently and need not agree with each other.
type ChainSnapshot struct {
	Stake  StakeSnapshot  `json:"stake" yaml:"stake"`
	Miner  MinerSnapshot  `json:"miner" yaml:"miner"`
	Detail DetailSnapshot `json:"detail" yaml:"detail"`
}

// Chain lays the staking panel above the miner and detail panels.
type Chain struct {
	stake  *StakeControl
	miner  *Miner
	detail *ChainDetail
}

func NewChain(opts Options) *Chain {
	opts = opts.withDefaults()
	return &Chain{
		stake:  NewStakeControl(opts),
		miner:  NewMiner(opts),
		detail: NewChainDetail(opts),
	}
}

func (c *Chain) Mount(ctx context.Context) {
	c.stake.Mount(ctx)
	c.miner.Mount(ctx)
	c.detail.Mount(ctx)
}

func (c *Chain) Unmount() {
	c.stake.Unmount()
	c.miner.Unmount()
	c.detail.Unmount()
}

func (c *Chain) Stake() *StakeControl {
	return c.stake
}

func (c *Chain) Miner() *Miner {
	return c.miner
}

func (c *Chain) Detail() *ChainDetail {
	return c.detail
}

func (c *Chain) Snapshot() ChainSnapshot {
	return ChainSnapshot{
		Stake:  c.stake.Snapshot(),
		Miner:  c.miner.Snapshot(),
		Detail: c.detail.Snapshot(),
	}
}
