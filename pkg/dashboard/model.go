// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dashboard is the terminal rendering of the Chain panel: staking
// control on top, the miner toggle and chain statistics below.
package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/luxfi/chaindash/pkg/animate"
	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/panel"
	"github.com/luxfi/chaindash/pkg/prompts"
	"go.uber.org/zap"
)

// Panels is what the dashboard drives. *panel.Chain satisfies it through
// ChainPanels.
type Panels interface {
	Snapshot() panel.ChainSnapshot
	Stake(ctx context.Context) error
	Unstake(ctx context.Context) error
	ToggleMining(ctx context.Context, on bool) error
}

type chainPanels struct {
	chain *panel.Chain
}

func ChainPanels(c *panel.Chain) Panels {
	return chainPanels{chain: c}
}

func (p chainPanels) Snapshot() panel.ChainSnapshot {
	return p.chain.Snapshot()
}

func (p chainPanels) Stake(ctx context.Context) error {
	return p.chain.Stake().Stake(ctx)
}

func (p chainPanels) Unstake(ctx context.Context) error {
	return p.chain.Stake().Unstake(ctx)
}

func (p chainPanels) ToggleMining(ctx context.Context, on bool) error {
	return p.chain.Miner().Toggle(ctx, on)
}

type Options struct {
	// Node is the address shown in the title.
	Node          string
	Symbol        string
	Decimals      int
	AnimationRate float64
	Log           *zap.Logger
}

type (
	frameMsg      time.Time
	actionDoneMsg struct {
		action string
		err    error
	}
)

type toastEntry struct {
	notify.Toast
	expires time.Time
}

type modal struct {
	label string
	reply chan<- prompts.Result
	input textinput.Model
}

// counters are the amounts eased between polls.
type counters struct {
	staking        *animate.Animator
	balance        *animate.Animator
	totalSupply    *animate.Animator
	expectedReward *animate.Animator
}

type Model struct {
	ctx    context.Context
	panels Panels
	opts   Options
	now    func() time.Time

	snap     panel.ChainSnapshot
	counters counters
	toasts   []toastEntry
	modal    *modal
	busy     string
	width    int
	quitting bool
}

var _ tea.Model = (*Model)(nil)

func New(ctx context.Context, panels Panels, opts Options) *Model {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Decimals < 0 {
		opts.Decimals = 0
	}
	counter := func() *animate.Animator { return animate.New(opts.AnimationRate, opts.Decimals) }
	return &Model{
		ctx:    ctx,
		panels: panels,
		opts:   opts,
		now:    time.Now,
		counters: counters{
			staking:        counter(),
			balance:        counter(),
			totalSupply:    counter(),
			expectedReward: counter(),
		},
	}
}

func frame() tea.Cmd {
	return tea.Tick(constants.AnimationFrame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	m.pull()
	return frame()
}

// pull takes a fresh snapshot and retargets the counters.
func (m *Model) pull() {
	m.snap = m.panels.Snapshot()
	m.counters.staking.SetTarget(m.snap.Stake.Staking.Tokens())
	m.counters.balance.SetTarget(m.snap.Detail.Balance.Tokens())
	m.counters.totalSupply.SetTarget(m.snap.Detail.TotalSupply.Tokens())
	m.counters.expectedReward.SetTarget(m.snap.Detail.ExpectedReward.Tokens())
}

func (m *Model) step() {
	m.counters.staking.Step()
	m.counters.balance.Step()
	m.counters.totalSupply.Step()
	m.counters.expectedReward.Step()
}

func (m *Model) expireToasts() {
	now := m.now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if now.Before(t.expires) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case frameMsg:
		m.pull()
		m.step()
		m.expireToasts()
		return m, frame()

	case toastMsg:
		m.toasts = append(m.toasts, toastEntry{
			Toast:   notify.Toast(msg),
			expires: m.now().Add(constants.ToastDuration),
		})
		return m, nil

	case promptRequest:
		return m, m.openModal(msg)

	case actionDoneMsg:
		m.busy = ""
		if msg.err != nil {
			m.opts.Log.Debug("action failed", zap.String("action", msg.action), zap.Error(msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		if m.modal != nil {
			return m.updateModal(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "s":
		return m, m.run("stake", m.panels.Stake)
	case "u":
		return m, m.run("unstake", m.panels.Unstake)
	case "m":
		on := !m.snap.Miner.On
		return m, m.run("mining", func(ctx context.Context) error {
			return m.panels.ToggleMining(ctx, on)
		})
	}
	return m, nil
}

// run starts one action off the loop. A second key press while an action
// is in flight is ignored.
func (m *Model) run(action string, fn func(ctx context.Context) error) tea.Cmd {
	if m.busy != "" {
		return nil
	}
	m.busy = action
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn(ctx)}
	}
}

func (m *Model) openModal(req promptRequest) tea.Cmd {
	if m.modal != nil {
		// one modal at a time
		req.reply <- prompts.Cancelled()
		return nil
	}
	input := textinput.New()
	input.Prompt = "> "
	if req.masked {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	m.modal = &modal{label: req.label, reply: req.reply, input: input}
	return m.modal.input.Focus()
}

func (m *Model) closeModal(r prompts.Result) {
	m.modal.reply <- r
	m.modal = nil
}

func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeModal(prompts.Cancelled())
		return m, nil
	case tea.KeyEnter:
		m.closeModal(prompts.Confirmed(m.modal.input.Value()))
		return m, nil
	case tea.KeyCtrlC:
		m.closeModal(prompts.Cancelled())
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.modal.input, cmd = m.modal.input.Update(msg)
	return m, cmd
}
