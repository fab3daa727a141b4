// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	// EnvNonInteractive disables prompting when truthy.
	EnvNonInteractive = "CHAINDASH_NON_INTERACTIVE"
	// EnvCI is set by most CI runners.
	EnvCI = "CI"
)

// Mode records whether amounts and passwords may be asked for, and if not,
// what turned prompting off.
type Mode struct {
	Interactive bool
	Reason      string
}

var stdinIsTTY = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func truthy(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	}
	return false
}

// DetectMode resolves the prompting mode. The flag wins, then the
// environment, then whether stdin is a terminal.
func DetectMode(nonInteractiveFlag bool) Mode {
	switch {
	case nonInteractiveFlag:
		return Mode{Reason: "--non-interactive"}
	case truthy(EnvNonInteractive):
		return Mode{Reason: EnvNonInteractive}
	case truthy(EnvCI):
		return Mode{Reason: EnvCI}
	case !stdinIsTTY():
		return Mode{Reason: "stdin is not a terminal"}
	}
	return Mode{Interactive: true}
}

// IsInteractive reports whether prompting is allowed with no flag given.
func IsInteractive() bool {
	return DetectMode(false).Interactive
}

// Prompter returns a prompter matching the mode. Non-interactive prompters
// fail fast with ErrNonInteractive.
func (m Mode) Prompter() Prompter {
	if !m.Interactive {
		return NewNonInteractivePrompter()
	}
	return NewPrompter()
}

// NewPrompterForMode is shorthand for DetectMode(flag).Prompter().
func NewPrompterForMode(nonInteractiveFlag bool) Prompter {
	return DetectMode(nonInteractiveFlag).Prompter()
}
