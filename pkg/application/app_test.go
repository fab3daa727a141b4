// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/luxfi/chaindash/pkg/config"
	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/units"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, conf *config.Config) *Chaindash {
	tempDir := t.TempDir()
	app := New()
	app.Setup(tempDir, nil, conf, nil)
	return app
}

func confFor(t *testing.T, rawURL string) *config.Config {
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return &config.Config{
		Host:           u.Hostname(),
		Port:           port,
		PollInterval:   10 * time.Millisecond,
		RequestTimeout: time.Second,
		StakingPath:    constants.PathStaking,
		AnimationRate:  0.4,
	}
}

func TestPaths(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t, nil)

	require.Equal(filepath.Join(ap.GetBaseDir(), "logs"), ap.GetLogDir())
	require.Equal(filepath.Join(ap.GetBaseDir(), "logs", "chaindash.log"), ap.GetLogFile())
	require.Equal(filepath.Join(ap.GetBaseDir(), "config.yaml"), ap.GetConfigPath())
	require.NotNil(ap.Log)
}

func TestWriteConfigFile(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t, nil)

	require.False(ap.ConfigFileExists())
	require.NoError(ap.WriteConfigFile([]byte("host: 10.0.0.1\n")))
	require.True(ap.ConfigFileExists())

	data, err := os.ReadFile(ap.GetConfigPath())
	require.NoError(err)
	require.Equal("host: 10.0.0.1\n", string(data))
}

func TestSessionFeedsStakingIntoPanels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case constants.PathStaking:
			_, _ = io.WriteString(w, `"3000000000000000000"`)
		case constants.PathTotalStaking:
			_, _ = io.WriteString(w, `"6000000000000000000"`)
		case constants.PathEqualizeStatus:
			_, _ = io.WriteString(w, `{"height":5,"round":1}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ap := newTestApp(t, confFor(t, srv.URL))
	s := ap.NewSession(nil, nil)
	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool {
		snap := s.Chain.Snapshot()
		return snap.Stake.Rate == "50.000%" && snap.Detail.Role == "equalizer"
	}, 2*time.Second, 5*time.Millisecond)

	staked, err := units.ParseFixed("3000000000000000000")
	require.NoError(t, err)
	require.True(t, s.Staking.Staking().Equal(staked))
}

func TestConsoleNotifier(t *testing.T) {
	var buf strings.Builder
	n := ConsoleNotifier(ux.New(nil, &buf))

	n.Notify(notify.Error, "The password is incorrect.")
	n.Notify(notify.Info, "submitted")
	require.Equal(t, "✗ The password is incorrect.\nsubmitted\n", buf.String())

	// no output writer
	ConsoleNotifier(nil).Notify(notify.Error, "dropped")
}
