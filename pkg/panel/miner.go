// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package panel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/luxfi/chaindash/pkg/nodeclient"
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/poller"
	"go.uber.org/zap"
)

const PromptMiningPassword = "Please enter the password to start mining."

// MinerStatus is the miner state shown on the toggle.
type MinerStatus int

const (
	MinerIdle MinerStatus = iota
	MinerReady
	MinerMining
)

// DeriveMinerStatus maps the node's report onto a status. Mining wins over
// Ready, which wins over Idle.
func DeriveMinerStatus(s nodeclient.MinerState) MinerStatus {
	switch {
	case s.Mining:
		return MinerMining
	case s.Ready:
		return MinerReady
	default:
		return MinerIdle
	}
}

func (s MinerStatus) String() string {
	switch s {
	case MinerIdle:
		return "idle"
	case MinerReady:
		return "ready"
	case MinerMining:
		return "mining"
	default:
		return fmt.Sprintf("MinerStatus(%d)", int(s))
	}
}

// Label is the text shown next to the toggle.
func (s MinerStatus) Label() string {
	switch s {
	case MinerIdle:
		return "IDLE"
	case MinerReady:
		return "Ready"
	case MinerMining:
		return "Equalizing"
	default:
		return s.String()
	}
}

// Activeness drives how the status is coloured.
type Activeness string

const (
	Inactive Activeness = "inactive"
	Mediate  Activeness = "mediate"
	Active   Activeness = "active"
)

func (s MinerStatus) Activeness() Activeness {
	switch s {
	case MinerReady:
		return Mediate
	case MinerMining:
		return Active
	default:
		return Inactive
	}
}

func (s MinerStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MinerSnapshot is what the miner panel shows.
type MinerSnapshot struct {
	Status     MinerStatus `json:"status" yaml:"status"`
	Label      string      `json:"label" yaml:"label"`
	Activeness Activeness  `json:"activeness" yaml:"activeness"`
	// On is the toggle position.
	On bool `json:"on" yaml:"on"`
}

// Miner is the miner panel: a status polled from the node and a toggle
// that starts or stops mining.
type Miner struct {
	opts   Options
	lc     lifecycle
	status MinerStatus
}

func NewMiner(opts Options) *Miner {
	return &Miner{opts: opts.withDefaults()}
}

func (m *Miner) Mount(ctx context.Context) {
	epoch, ok := m.lc.mount()
	if !ok {
		return
	}
	m.lc.update(epoch, func() { m.status = MinerIdle })
	h := poller.Start(ctx, m.opts.Interval, func(ctx context.Context) {
		m.refresh(ctx, epoch)
	})
	m.lc.onUnmount(epoch, h.Stop)
}

func (m *Miner) Unmount() {
	m.lc.unmount()
}

func (m *Miner) refresh(ctx context.Context, epoch uint64) {
	state, err := m.opts.Client.MinerStatus(ctx)
	if err != nil {
		m.opts.Log.Debug("miner status poll failed", zap.Error(err))
		return
	}
	m.lc.update(epoch, func() { m.status = DeriveMinerStatus(state) })
}

func (m *Miner) Status() MinerStatus {
	m.lc.mu.Lock()
	defer m.lc.mu.Unlock()
	return m.status
}

func (m *Miner) Snapshot() MinerSnapshot {
	status := m.Status()
	return MinerSnapshot{
		Status:     status,
		Label:      status.Label(),
		Activeness: status.Activeness(),
		On:         status == MinerMining,
	}
}

// Toggle handles a flip of the mining switch. Turning it on asks for the
// node's password first.
func (m *Miner) Toggle(ctx context.Context, on bool) error {
	if !on {
		return m.Stop(ctx)
	}
	res, err := m.opts.Prompter.CapturePassword(PromptMiningPassword)
	if err != nil {
		return fmt.Errorf("password prompt: %w", err)
	}
	password, ok := res.Value()
	if !ok {
		m.opts.Log.Debug("password prompt cancelled")
		return nil
	}
	return m.StartWithPassword(ctx, password)
}

// StartWithPassword asks the node to start mining.
func (m *Miner) StartWithPassword(ctx context.Context, password string) error {
	resp, err := m.opts.Client.StartMining(ctx, password)
	if err != nil {
		if nodeclient.StatusCode(err) == http.StatusConflict {
			m.opts.Notifier.Notify(notify.Error, MsgIncorrectPassword)
			return &CredentialError{Err: err}
		}
		uerr := unknown(err)
		m.opts.Log.Warn("start mining failed", zap.Int("status", uerr.StatusCode), zap.Error(err))
		m.opts.Notifier.Notify(notify.Error, uerr.Message())
		return uerr
	}
	m.opts.Log.Info("start mining submitted", zap.ByteString("response", resp))
	return nil
}

// Stop asks the node to stop mining. Failures are logged, not shown.
func (m *Miner) Stop(ctx context.Context) error {
	resp, err := m.opts.Client.StopMining(ctx)
	if err != nil {
		uerr := unknown(err)
		m.opts.Log.Warn("stop mining failed", zap.Int("status", uerr.StatusCode), zap.Error(err))
		return uerr
	}
	m.opts.Log.Info("stop mining submitted", zap.ByteString("response", resp))
	return nil
}
