// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"time"

	"github.com/luxfi/chaindash/pkg/panel"
)

// EndpointStatus is the outcome of one probe request.
type EndpointStatus struct {
	Path      string `json:"path" yaml:"path"`
	OK        bool   `json:"ok" yaml:"ok"`
	LatencyMS int    `json:"latencyMs" yaml:"latencyMs"`
	LastError string `json:"lastError,omitempty" yaml:"lastError,omitempty"`
}

// StatusResult is one probe of the node: every panel value plus how each
// endpoint answered.
type StatusResult struct {
	Node       string              `json:"node" yaml:"node"`
	Chain      panel.ChainSnapshot `json:"chain" yaml:"chain"`
	Endpoints  []EndpointStatus    `json:"endpoints" yaml:"endpoints"`
	Timestamp  time.Time           `json:"timestamp" yaml:"timestamp"`
	DurationMS int                 `json:"durationMs" yaml:"durationMs"`
}

// Healthy reports whether every endpoint answered.
func (r *StatusResult) Healthy() bool {
	for _, e := range r.Endpoints {
		if !e.OK {
			return false
		}
	}
	return true
}
