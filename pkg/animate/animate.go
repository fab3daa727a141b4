// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package animate eases a displayed number toward its latest value.
package animate

import (
	"github.com/shopspring/decimal"
)

// Animator moves a shown value a fixed fraction of the remaining distance
// toward the target on every Step. Once the gap is within one display unit
// it snaps to the target.
type Animator struct {
	rate    decimal.Decimal
	unit    decimal.Decimal
	current decimal.Decimal
	target  decimal.Decimal
	started bool
}

// New returns an animator that closes rate of the gap per frame. decimals is
// the number of fractional digits shown, which fixes the snap threshold.
// A rate outside (0, 1] disables easing.
func New(rate float64, decimals int) *Animator {
	r := decimal.NewFromFloat(rate)
	if r.Sign() <= 0 || r.GreaterThan(decimal.NewFromInt(1)) {
		r = decimal.NewFromInt(1)
	}
	return &Animator{
		rate: r,
		unit: decimal.New(1, int32(-decimals)),
	}
}

// SetTarget changes the value being approached. The first target is shown
// immediately.
func (a *Animator) SetTarget(v decimal.Decimal) {
	a.target = v
	if !a.started {
		a.current = v
		a.started = true
	}
}

func (a *Animator) Target() decimal.Decimal {
	return a.target
}

func (a *Animator) Current() decimal.Decimal {
	return a.current
}

// Settled reports whether the shown value equals the target.
func (a *Animator) Settled() bool {
	return a.current.Equal(a.target)
}

// Step advances one frame and returns the value to display.
func (a *Animator) Step() decimal.Decimal {
	diff := a.target.Sub(a.current)
	if diff.Abs().LessThanOrEqual(a.unit) {
		a.current = a.target
		return a.current
	}
	a.current = a.current.Add(diff.Mul(a.rate))
	return a.current
}
