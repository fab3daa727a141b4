// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package units holds the fixed-point token amount used by every node
// endpoint: an integer count of base units, 10^18 base units per token.
package units

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/shopspring/decimal"
)

var (
	ErrNotANumber  = errors.New("not a number")
	ErrTooPrecise  = fmt.Errorf("more than %d fractional digits", constants.TokenDecimals)
	ErrNotAnAmount = errors.New("not a fixed-point amount")
)

// Amount is an integer number of base units. The zero value is zero.
type Amount struct {
	d decimal.Decimal
}

var Zero = Amount{}

func FromBig(i *big.Int) Amount {
	if i == nil {
		return Zero
	}
	return Amount{d: decimal.NewFromBigInt(i, 0)}
}

func FromInt64(i int64) Amount {
	return Amount{d: decimal.NewFromInt(i)}
}

// ParseFixed parses a base-unit integer given in decimal digits or as a
// 0x-prefixed hexadecimal string.
func ParseFixed(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("%w: empty", ErrNotAnAmount)
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		i, ok := new(big.Int).SetString(s[2:], 16)
		if !ok {
			return Zero, fmt.Errorf("%w: %q", ErrNotAnAmount, s)
		}
		return FromBig(i), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrNotAnAmount, s)
	}
	if !d.Equal(d.Truncate(0)) {
		return Zero, fmt.Errorf("%w: %q has a fractional part", ErrNotAnAmount, s)
	}
	return Amount{d: d.Truncate(0)}, nil
}

// ParseTokens parses a user-entered token quantity such as "1.5" or "2e3".
// Sign and precision are not checked here; see FromTokens.
func ParseTokens(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrNotANumber
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	return d, nil
}

// FromTokens scales a token quantity to base units. Quantities that do not
// land on a whole base unit are rejected rather than truncated.
func FromTokens(tokens decimal.Decimal) (Amount, error) {
	scaled := tokens.Shift(constants.TokenDecimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return Zero, ErrTooPrecise
	}
	return Amount{d: scaled.Truncate(0)}, nil
}

func (a Amount) Big() *big.Int {
	return a.d.BigInt()
}

func (a Amount) Sign() int {
	return a.d.Sign()
}

func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// Tokens returns the amount in whole-token units.
func (a Amount) Tokens() decimal.Decimal {
	return a.d.Shift(-constants.TokenDecimals)
}

// Hex encodes the amount the way the transaction endpoints expect it.
func (a Amount) Hex() string {
	return hexutil.EncodeBig(a.d.BigInt())
}

func (a Amount) String() string {
	return a.d.String()
}

// MarshalText lets text encoders such as YAML write the decimal form.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.d.String()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseFixed(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.d.String())
}

// UnmarshalJSON accepts a JSON string (decimal or hex) or a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Zero
		return nil
	}
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}
	parsed, err := ParseFixed(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
