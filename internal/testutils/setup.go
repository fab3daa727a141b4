// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"bytes"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/luxfi/chaindash/pkg/application"
	"github.com/luxfi/chaindash/pkg/config"
	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/prompts"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/stretchr/testify/require"
)

// SetupTest routes user output into the returned buffer.
func SetupTest(t *testing.T) *bytes.Buffer {
	t.Helper()
	out := &bytes.Buffer{}
	prev := ux.Logger
	ux.Logger = ux.New(nil, out)
	t.Cleanup(func() { ux.Logger = prev })
	return out
}

// ConfigFor points a default configuration at the node behind rawURL.
func ConfigFor(t *testing.T, rawURL string) *config.Config {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return &config.Config{
		Host:            u.Hostname(),
		Port:            port,
		PollInterval:    10 * time.Millisecond,
		RequestTimeout:  time.Second,
		TokenSymbol:     constants.DefaultTokenSymbol,
		DisplayDecimals: constants.DefaultDisplayDecimals,
		StakingPath:     constants.PathStaking,
		AnimationRate:   constants.DefaultAnimationRate,
		RelayListen:     "127.0.0.1:0",
	}
}

// SetupTestInTempDir returns an app rooted in a temp dir that talks to node.
func SetupTestInTempDir(t *testing.T, node *FakeNode, prompter prompts.Prompter) *application.Chaindash {
	t.Helper()
	if prompter == nil {
		prompter = prompts.NewNonInteractivePrompter()
	}
	app := application.New()
	app.Setup(t.TempDir(), nil, ConfigFor(t, node.URL()), prompter)
	return app
}
