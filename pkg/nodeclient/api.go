// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nodeclient

import (
	"context"
	"encoding/json"

	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/units"
)

// EqualizeStatus is the node's consensus progress.
type EqualizeStatus struct {
	Height uint64 `json:"height"`
	Round  uint64 `json:"round"`
}

// MinerState is the raw miner report; see panel.DeriveMinerStatus.
type MinerState struct {
	Mining bool `json:"mining"`
	Ready  bool `json:"ready"`
}

type amountRequest struct {
	Amount string `json:"amount"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

func (c *Client) getAmount(ctx context.Context, path string) (units.Amount, error) {
	var a units.Amount
	if err := c.Get(ctx, path, nil, &a); err != nil {
		return units.Zero, err
	}
	return a, nil
}

func (c *Client) TotalStaking(ctx context.Context) (units.Amount, error) {
	return c.getAmount(ctx, constants.PathTotalStaking)
}

// Staking is this node's own staked amount. The path can be overridden by
// configuration, so it is passed in.
func (c *Client) Staking(ctx context.Context, path string) (units.Amount, error) {
	if path == "" {
		path = constants.PathStaking
	}
	return c.getAmount(ctx, path)
}

func (c *Client) Balance(ctx context.Context) (units.Amount, error) {
	return c.getAmount(ctx, constants.PathBalance)
}

func (c *Client) TotalSupply(ctx context.Context) (units.Amount, error) {
	return c.getAmount(ctx, constants.PathTotalSupply)
}

func (c *Client) ExpectedReward(ctx context.Context) (units.Amount, error) {
	return c.getAmount(ctx, constants.PathExpectedReward)
}

func (c *Client) EqualizeStatus(ctx context.Context) (EqualizeStatus, error) {
	var s EqualizeStatus
	err := c.Get(ctx, constants.PathEqualizeStatus, nil, &s)
	return s, err
}

func (c *Client) MinerStatus(ctx context.Context) (MinerState, error) {
	var s MinerState
	err := c.Get(ctx, constants.PathMinerStatus, nil, &s)
	return s, err
}

func (c *Client) Stake(ctx context.Context, amount units.Amount) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.Post(ctx, constants.PathStake, amountRequest{Amount: amount.Hex()}, &resp)
	return resp, err
}

func (c *Client) Unstake(ctx context.Context, amount units.Amount) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.Post(ctx, constants.PathUnstake, amountRequest{Amount: amount.Hex()}, &resp)
	return resp, err
}

func (c *Client) StartMining(ctx context.Context, password string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.Post(ctx, constants.PathStartMining, passwordRequest{Password: password}, &resp)
	return resp, err
}

func (c *Client) StopMining(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.Post(ctx, constants.PathStopMining, nil, &resp)
	return resp, err
}
