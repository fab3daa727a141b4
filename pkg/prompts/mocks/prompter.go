// Code generated manually for testing. Update as needed.

package mocks

import (
	"github.com/luxfi/chaindash/pkg/prompts"
	"github.com/stretchr/testify/mock"
)

// Prompter is a mock implementation of prompts.Prompter
type Prompter struct {
	mock.Mock
}

var _ prompts.Prompter = (*Prompter)(nil)

func (m *Prompter) CaptureString(promptStr string) (prompts.Result, error) {
	args := m.Called(promptStr)
	return args.Get(0).(prompts.Result), args.Error(1)
}

func (m *Prompter) CapturePassword(promptStr string) (prompts.Result, error) {
	args := m.Called(promptStr)
	return args.Get(0).(prompts.Result), args.Error(1)
}
