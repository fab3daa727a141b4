// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package panel

import (
	"errors"
	"fmt"

	"github.com/luxfi/chaindash/pkg/nodeclient"
)

// Toast texts shown to the user.
const (
	MsgInvalidInput        = "Input data is invalid."
	MsgStakeNotPositive    = "Staking amount should be positive number."
	MsgUnstakeNotPositive  = "Unstaking amount should be positive number."
	MsgIncorrectPassword   = "The password is incorrect."
	msgUnknownErrorPattern = "unknown error: %d"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// ValidationError is a rejected user input. The request was never sent.
type ValidationError struct {
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CredentialError is a start-mining request the node refused for a wrong
// password.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return ErrIncorrectPassword.Error()
}

func (e *CredentialError) Unwrap() []error {
	return []error{ErrIncorrectPassword, e.Err}
}

// UnknownError is any other failed submission. StatusCode is zero when the
// node could not be reached.
type UnknownError struct {
	StatusCode int
	Err        error
}

func (e *UnknownError) Error() string {
	if e.Err == nil {
		return e.Message()
	}
	return fmt.Sprintf("%s: %v", e.Message(), e.Err)
}

// Message is the toast text for the error.
func (e *UnknownError) Message() string {
	return fmt.Sprintf(msgUnknownErrorPattern, e.StatusCode)
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}

func unknown(err error) *UnknownError {
	return &UnknownError{StatusCode: nodeclient.StatusCode(err), Err: err}
}
