// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/format"
	"github.com/luxfi/chaindash/pkg/nodeclient"
	"github.com/luxfi/chaindash/pkg/panel"
	"github.com/luxfi/chaindash/pkg/units"
	"golang.org/x/sync/errgroup"
)

// ErrNodeUnreachable is returned when no endpoint answered.
var ErrNodeUnreachable = errors.New("node did not answer any status endpoint")

// StatusService takes one-shot snapshots of the node without mounting the
// panels.
type StatusService struct {
	client      *nodeclient.Client
	stakingPath string
}

// NewStatusService creates a new status service
func NewStatusService(client *nodeclient.Client, stakingPath string) *StatusService {
	return &StatusService{
		client:      client,
		stakingPath: stakingPath,
	}
}

// GetStatus queries every endpoint concurrently. A failing endpoint is
// reported in Endpoints and leaves its value zero.
func (s *StatusService) GetStatus(ctx context.Context) (*StatusResult, error) {
	startTime := time.Now()

	var (
		mu        sync.Mutex
		endpoints []EndpointStatus
		g         errgroup.Group

		totalStaking, staking, balance, supply, reward units.Amount
		equalize                                       nodeclient.EqualizeStatus
		miner                                          nodeclient.MinerState
	)

	probe := func(path string, fetch func(context.Context) error) {
		g.Go(func() error {
			began := time.Now()
			err := fetch(ctx)
			e := EndpointStatus{
				Path:      path,
				OK:        err == nil,
				LatencyMS: int(time.Since(began).Milliseconds()),
			}
			if err != nil {
				e.LastError = err.Error()
			}
			mu.Lock()
			endpoints = append(endpoints, e)
			mu.Unlock()
			return nil
		})
	}
	amount := func(dst *units.Amount, get func(context.Context) (units.Amount, error)) func(context.Context) error {
		return func(ctx context.Context) error {
			a, err := get(ctx)
			if err == nil {
				*dst = a
			}
			return err
		}
	}

	probe(constants.PathTotalStaking, amount(&totalStaking, s.client.TotalStaking))
	probe(s.stakingPath, amount(&staking, func(ctx context.Context) (units.Amount, error) {
		return s.client.Staking(ctx, s.stakingPath)
	}))
	probe(constants.PathBalance, amount(&balance, s.client.Balance))
	probe(constants.PathTotalSupply, amount(&supply, s.client.TotalSupply))
	probe(constants.PathExpectedReward, amount(&reward, s.client.ExpectedReward))
	probe(constants.PathEqualizeStatus, func(ctx context.Context) error {
		st, err := s.client.EqualizeStatus(ctx)
		if err == nil {
			equalize = st
		}
		return err
	})
	probe(constants.PathMinerStatus, func(ctx context.Context) error {
		st, err := s.client.MinerStatus(ctx)
		if err == nil {
			miner = st
		}
		return err
	})
	_ = g.Wait()

	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].Path < endpoints[j].Path })
	result := &StatusResult{
		Node:       s.client.BaseURL(),
		Endpoints:  endpoints,
		Timestamp:  time.Now(),
		DurationMS: int(time.Since(startTime).Milliseconds()),
	}

	minerStatus := panel.DeriveMinerStatus(miner)
	result.Chain = panel.ChainSnapshot{
		Stake: panel.StakeSnapshot{
			Staking:      staking,
			TotalStaking: totalStaking,
			Rate:         format.Rate(staking, totalStaking),
		},
		Miner: panel.MinerSnapshot{
			Status:     minerStatus,
			Label:      minerStatus.Label(),
			Activeness: minerStatus.Activeness(),
			On:         minerStatus == panel.MinerMining,
		},
		Detail: panel.DetailSnapshot{
			Height:         equalize.Height,
			Round:          equalize.Round,
			Balance:        balance,
			TotalSupply:    supply,
			ExpectedReward: reward,
			Staking:        staking,
			Role:           panel.DeriveRole(equalize.Height, staking),
		},
	}

	for _, e := range endpoints {
		if e.OK {
			return result, nil
		}
	}
	return result, ErrNodeUnreachable
}
