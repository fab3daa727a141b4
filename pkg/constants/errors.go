// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrInvalidPort    = errors.New("node port must be between 1 and 65535")
	ErrEmptyHost      = errors.New("node host is empty")
	ErrInvalidRate    = errors.New("animation rate must be in (0, 1]")
	ErrInvalidTimeout = errors.New("durations must be positive")
)
