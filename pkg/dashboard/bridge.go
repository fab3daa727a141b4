// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dashboard

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/prompts"
)

// promptRequest asks the event loop to show a modal input. The answer is
// sent back on reply exactly once.
type promptRequest struct {
	label  string
	masked bool
	reply  chan<- prompts.Result
}

type toastMsg notify.Toast

// Bridge lets panels, which run outside the event loop, prompt and toast
// through it. It implements both prompts.Prompter and notify.Notifier.
type Bridge struct {
	mu     sync.Mutex
	send   func(tea.Msg)
	done   chan struct{}
	closed bool
}

var (
	_ prompts.Prompter = (*Bridge)(nil)
	_ notify.Notifier  = (*Bridge)(nil)
)

func NewBridge() *Bridge {
	return &Bridge{done: make(chan struct{})}
}

// Attach routes messages to a running program. Until a program is attached
// toasts are dropped and prompts are cancelled.
func (b *Bridge) Attach(p *tea.Program) {
	b.attach(p.Send)
}

func (b *Bridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

// Close releases every pending prompt as cancelled. Later calls are no-ops.
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.send = nil
	close(b.done)
}

func (b *Bridge) sender() func(tea.Msg) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.send
}

func (b *Bridge) CaptureString(label string) (prompts.Result, error) {
	return b.ask(label, false), nil
}

func (b *Bridge) CapturePassword(label string) (prompts.Result, error) {
	return b.ask(label, true), nil
}

func (b *Bridge) ask(label string, masked bool) prompts.Result {
	send := b.sender()
	if send == nil {
		return prompts.Cancelled()
	}
	reply := make(chan prompts.Result, 1)
	send(promptRequest{label: label, masked: masked, reply: reply})
	select {
	case r := <-reply:
		return r
	case <-b.done:
		return prompts.Cancelled()
	}
}

func (b *Bridge) Notify(level notify.Level, message string) {
	if send := b.sender(); send != nil {
		send(toastMsg{Level: level, Message: message})
	}
}
