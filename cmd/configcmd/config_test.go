// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/chaindash/internal/testutils"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := testutils.SetupTest(t)
	cmd := NewCmd(app)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func freshApp(t *testing.T) {
	t.Helper()
	app = testutils.SetupTestInTempDir(t, testutils.NewFakeNode(t), nil)
}

func TestShow(t *testing.T) {
	freshApp(t)
	out, err := execute(t, "show")
	require.NoError(t, err)
	require.Contains(t, out, "poll-interval")
	require.Contains(t, out, "10ms")
	require.Contains(t, out, "relay.listen")
	require.Contains(t, out, "config file: none")
}

func TestGet(t *testing.T) {
	freshApp(t)
	out, err := execute(t, "get", "token-symbol")
	require.NoError(t, err)
	require.Equal(t, "token-symbol = ENMC\n", out)

	_, err = execute(t, "get", "colour")
	require.ErrorContains(t, err, `unknown key "colour"`)
}

func TestSetWritesConfigFile(t *testing.T) {
	freshApp(t)
	out, err := execute(t, "set", "port", "9000")
	require.NoError(t, err)
	require.Contains(t, out, "✓ Set port = 9000")

	_, err = execute(t, "set", "relay.listen", "0.0.0.0:9999")
	require.NoError(t, err)

	data, err := os.ReadFile(app.GetConfigPath())
	require.NoError(t, err)
	require.Contains(t, string(data), "port: 9000")
	require.Contains(t, string(data), "relay:\n    listen: 0.0.0.0:9999")
}

func TestSetRejectsBadValue(t *testing.T) {
	freshApp(t)
	_, err := execute(t, "set", "port", "eighty")
	require.ErrorContains(t, err, "expected integer")
	require.NoFileExists(t, app.GetConfigPath())
}

func TestLint(t *testing.T) {
	freshApp(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("host: 10.0.0.1\nport: 8080\npoll-interval: 1s\n"), 0o644))
	out, err := execute(t, "lint", good)
	require.NoError(t, err)
	require.Contains(t, out, "0 errors, 0 warnings")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("hots: 10.0.0.1\nrequest-timeout: soon\n"), 0o644))
	out, err = execute(t, "lint", bad)
	require.Error(t, err)
	require.Contains(t, out, `ERROR: unknown key "hots"`)
	require.Contains(t, out, "request-timeout")
	require.Contains(t, out, "2 errors, 1 warnings")

	_, err = execute(t, "lint", filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config file")
}
