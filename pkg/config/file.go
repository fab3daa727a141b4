// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ReadFile decodes a YAML (or JSON) config file into a settings map. A
// missing file reads as empty.
func ReadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	settings := map[string]any{}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}

// Marshal encodes settings as YAML.
func Marshal(settings map[string]any) ([]byte, error) {
	return yaml.Marshal(settings)
}

// SetValue parses raw as the type key expects and stores it, nesting dotted
// keys into sections.
func SetValue(settings map[string]any, key, raw string) error {
	expected, ok := knownKeys[key]
	if !ok {
		if suggestion := suggestKey(key); suggestion != "" {
			return fmt.Errorf("unknown key %q (did you mean %q?)", key, suggestion)
		}
		return fmt.Errorf("unknown key %q", key)
	}

	var value any
	switch expected {
	case typeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid value for %q: %q (expected integer)", key, raw)
		}
		value = n
	case typeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid value for %q: %q (expected number)", key, raw)
		}
		value = f
	case typeDuration:
		if _, err := time.ParseDuration(raw); err != nil {
			return fmt.Errorf("invalid value for %q: %q (expected duration like \"1s\", \"500ms\")", key, raw)
		}
		value = raw
	default:
		value = raw
	}

	parts := strings.Split(key, ".")
	section := settings
	for _, p := range parts[:len(parts)-1] {
		next, ok := section[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			section[p] = next
		}
		section = next
	}
	section[parts[len(parts)-1]] = value
	return nil
}
