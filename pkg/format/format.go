// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package format renders node values for people: token amounts with digit
// grouping, block heights, the staking power rate and role labels.
package format

import (
	"strings"

	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/units"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const rateDecimals = 3

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// Amount renders a fixed-point amount in whole tokens with the given number
// of fractional digits. Extra digits are truncated, never rounded up.
func Amount(a units.Amount, decimals int) string {
	return Tokens(a.Tokens(), decimals)
}

// Tokens renders a token quantity, e.g. 1234.5 -> "1,234.5000".
func Tokens(d decimal.Decimal, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return group(d.Truncate(int32(decimals)).StringFixed(int32(decimals)))
}

// WithSymbol appends the token symbol when one is configured.
func WithSymbol(s, symbol string) string {
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// Integer renders a count with thousands separators.
func Integer(n uint64) string {
	return printer.Sprintf("%d", n)
}

// Rate renders staking/total as a percentage with three fractional digits.
// An undefined rate (total is zero) renders as a placeholder.
func Rate(staking, total units.Amount) string {
	if total.IsZero() {
		return constants.RatePlaceholder
	}
	pct := staking.Tokens().Div(total.Tokens()).Mul(decimal.NewFromInt(100))
	return group(pct.StringFixed(rateDecimals)) + "%"
}

// CapitalLabel upper-cases the first letter of a label such as a role name.
func CapitalLabel(s string) string {
	return titler.String(s)
}

// group inserts thousands separators into the integer part of a plain
// decimal string. The x/text printers only accept machine numbers, which
// cannot hold 18-decimal amounts exactly.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if hasFrac {
		return sign + intPart + "." + frac
	}
	return sign + intPart
}
