// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"

	"github.com/manifoldco/promptui"
)

const passwordMask = '*'

// Result is the outcome of a prompt.
type Result struct {
	value     string
	confirmed bool
}

func Confirmed(value string) Result {
	return Result{value: value, confirmed: true}
}

func Cancelled() Result {
	return Result{}
}

// Value returns the entered value and whether the prompt was confirmed.
func (r Result) Value() (string, bool) {
	return r.value, r.confirmed
}

func (r Result) IsCancelled() bool {
	return !r.confirmed
}

type Prompter interface {
	CaptureString(promptStr string) (Result, error)
	CapturePassword(promptStr string) (Result, error)
}

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

type realPrompter struct{}

func NewPrompter() Prompter {
	return &realPrompter{}
}

func (*realPrompter) CaptureString(promptStr string) (Result, error) {
	return run(promptui.Prompt{
		Label: promptStr,
	})
}

func (*realPrompter) CapturePassword(promptStr string) (Result, error) {
	return run(promptui.Prompt{
		Label: promptStr,
		Mask:  passwordMask,
	})
}

func run(prompt promptui.Prompt) (Result, error) {
	str, err := promptUIRunner(prompt)
	if err != nil {
		if isCancel(err) {
			return Cancelled(), nil
		}
		return Cancelled(), err
	}
	return Confirmed(str), nil
}

func isCancel(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) ||
		errors.Is(err, promptui.ErrEOF) ||
		errors.Is(err, promptui.ErrAbort)
}
