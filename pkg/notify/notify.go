// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package notify carries transient user-visible notifications (toasts) from
// the panels to whatever surface is rendering them.
package notify

import "sync"

type Level int

const (
	Info Level = iota
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Toast is one notification.
type Toast struct {
	Level   Level
	Message string
}

type Notifier interface {
	Notify(level Level, message string)
}

// Func adapts a function to a Notifier.
type Func func(level Level, message string)

func (f Func) Notify(level Level, message string) {
	f(level, message)
}

type discard struct{}

func (discard) Notify(Level, string) {}

// Discard drops every notification.
var Discard Notifier = discard{}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *Recorder) Notify(level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, Toast{Level: level, Message: message})
}

// Toasts returns a copy of the recorded notifications.
func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Toast(nil), r.toasts...)
}

// Messages returns only the recorded texts.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := make([]string, 0, len(r.toasts))
	for _, t := range r.toasts {
		msgs = append(msgs, t.Message)
	}
	return msgs
}
