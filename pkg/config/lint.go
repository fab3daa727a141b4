// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/luxfi/chaindash/pkg/constants"
)

type valueType int

const (
	typeString valueType = iota
	typeInt
	typeFloat
	typeDuration
)

var knownKeys = map[string]valueType{
	constants.ConfigHost:            typeString,
	constants.ConfigPort:            typeInt,
	constants.ConfigPollInterval:    typeDuration,
	constants.ConfigRequestTimeout:  typeDuration,
	constants.ConfigTokenSymbol:     typeString,
	constants.ConfigDisplayDecimals: typeInt,
	constants.ConfigStakingPath:     typeString,
	constants.ConfigAnimationRate:   typeFloat,
	constants.ConfigRelayListen:     typeString,
}

// LintResult contains the result of linting a configuration file.
type LintResult struct {
	Errors   []string
	Warnings []string
}

// IsValidKey returns true if key is a known configuration key.
func IsValidKey(key string) bool {
	_, ok := knownKeys[key]
	return ok
}

// KnownKeys returns every configuration key, sorted.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lint checks a decoded config file. Nested maps are flattened with dots,
// so a "relay" section holding "listen" checks relay.listen.
func Lint(settings map[string]any) *LintResult {
	result := &LintResult{}
	flat := make(map[string]any)
	flatten("", settings, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := flat[key]
		expected, ok := knownKeys[key]
		if !ok {
			if suggestion := suggestKey(key); suggestion != "" {
				result.Errors = append(result.Errors,
					fmt.Sprintf("unknown key %q (did you mean %q?)", key, suggestion))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("unknown key %q", key))
			}
			continue
		}
		if err := validateValue(key, value, expected); err != nil {
			result.Errors = append(result.Errors, err.Error())
		}
	}
	if _, ok := flat[constants.ConfigHost]; !ok {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%q not set, using %s or %s", constants.ConfigHost, constants.EnvServerAddress, constants.DefaultHost))
	}
	return result
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

func suggestKey(unknown string) string {
	bestMatch := ""
	bestScore := 0
	for _, key := range KnownKeys() {
		score := similarity(unknown, key)
		if score > bestScore && score >= 50 { // Require >=50% similarity
			bestScore = score
			bestMatch = key
		}
	}
	return bestMatch
}

// similarity returns a percentage (0-100) of how similar two strings are.
func similarity(a, b string) int {
	if a == b {
		return 100
	}

	aLower := strings.ToLower(a)
	bLower := strings.ToLower(b)

	if strings.Contains(aLower, bLower) || strings.Contains(bLower, aLower) {
		shorter, longer := len(a), len(b)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return (shorter * 100) / longer
	}

	split := func(s string) []string {
		return strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' || r == '.' })
	}
	aTokens := split(aLower)
	bTokens := split(bLower)

	matches := 0
	charMatches := 0
	for _, at := range aTokens {
		for _, bt := range bTokens {
			if at == bt {
				matches++
				charMatches += len(at)
				break
			}
			if len(at) >= 3 && len(bt) >= 3 {
				commonPrefix := 0
				for i := 0; i < len(at) && i < len(bt); i++ {
					if at[i] != bt[i] {
						break
					}
					commonPrefix++
				}
				if commonPrefix >= 3 {
					charMatches += commonPrefix
				}
			}
		}
	}

	totalTokens := max(len(aTokens), len(bTokens))
	if totalTokens == 0 {
		return 0
	}

	tokenScore := (matches * 100) / totalTokens
	charBonus := 0
	if charMatches > 0 {
		charBonus = (charMatches * 30) / max(len(a), len(b))
	}
	return tokenScore + charBonus
}

func validateValue(key string, value any, expected valueType) error {
	switch expected {
	case typeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("invalid value for %q: %v (expected string)", key, value)
		}
	case typeInt:
		switch v := value.(type) {
		case int, int64, uint64:
		case float64:
			if v != float64(int64(v)) {
				return fmt.Errorf("invalid value for %q: %v (expected integer, got float)", key, value)
			}
		default:
			return fmt.Errorf("invalid value for %q: %v (expected integer)", key, value)
		}
	case typeFloat:
		switch value.(type) {
		case float64, int, int64, uint64:
		default:
			return fmt.Errorf("invalid value for %q: %v (expected number)", key, value)
		}
	case typeDuration:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("invalid value for %q: %v (expected duration string like \"1s\")", key, value)
		}
		if _, err := time.ParseDuration(s); err != nil {
			return fmt.Errorf("invalid value for %q: %q (expected duration like \"1s\", \"500ms\")", key, s)
		}
	}
	return nil
}
