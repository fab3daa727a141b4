// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package statuscmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/luxfi/chaindash/internal/testutils"
	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/status"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, node *testutils.FakeNode, args ...string) (*bytes.Buffer, *bytes.Buffer, error) {
	t.Helper()
	out := testutils.SetupTest(t)
	progress := &bytes.Buffer{}
	progressWriter = progress
	t.Cleanup(func() {
		statusFlags.output = status.OutputTable
		statusFlags.watch = 0
	})

	cmd := NewCmd(testutils.SetupTestInTempDir(t, node, nil))
	cmd.SetArgs(args)
	return out, progress, cmd.ExecuteContext(context.Background())
}

func healthyNode(t *testing.T) *testutils.FakeNode {
	node := testutils.NewFakeNode(t)
	node.OK(constants.PathStaking, `"1000000000000000000"`)
	node.OK(constants.PathTotalStaking, `"4000000000000000000"`)
	node.OK(constants.PathEqualizeStatus, `{"height":77,"round":3}`)
	node.OK(constants.PathBalance, `"2500000000000000000000"`)
	node.OK(constants.PathTotalSupply, `"1000000000000000000000000"`)
	node.OK(constants.PathExpectedReward, `"500000000000000000"`)
	node.OK(constants.PathMinerStatus, `{"mining":false,"ready":true}`)
	return node
}

func TestStatusTable(t *testing.T) {
	out, progress, err := run(t, healthyNode(t))
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "25.000%")
	require.Contains(t, text, "2,500.0000 ENMC")
	require.Contains(t, text, "+0.5000 ENMC")
	require.Contains(t, text, "Ready")
	require.Contains(t, text, "Equalizer")
	require.NotContains(t, text, "failed endpoints")
	require.Contains(t, progress.String(), "✓ Querying")
}

func TestStatusJSON(t *testing.T) {
	out, _, err := run(t, healthyNode(t), "--output", "json")
	require.NoError(t, err)

	var got struct {
		Chain struct {
			Stake struct {
				Rate string `json:"rate"`
			} `json:"stake"`
			Detail struct {
				Height uint64 `json:"height"`
				Role   string `json:"role"`
			} `json:"detail"`
		} `json:"chain"`
		Endpoints []status.EndpointStatus `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, "25.000%", got.Chain.Stake.Rate)
	require.Equal(t, uint64(77), got.Chain.Detail.Height)
	require.Equal(t, "equalizer", got.Chain.Detail.Role)
	require.Len(t, got.Endpoints, 7)
}

func TestStatusYAML(t *testing.T) {
	out, _, err := run(t, healthyNode(t), "-o", "yaml")
	require.NoError(t, err)
	require.Contains(t, out.String(), "height: 77")
}

func TestStatusUnknownOutput(t *testing.T) {
	_, _, err := run(t, healthyNode(t), "-o", "xml")
	require.ErrorContains(t, err, "unknown output format")
}

func TestStatusNodeDown(t *testing.T) {
	node := testutils.NewFakeNode(t)
	for _, p := range []string{
		constants.PathStaking, constants.PathTotalStaking, constants.PathEqualizeStatus,
		constants.PathBalance, constants.PathTotalSupply, constants.PathExpectedReward,
		constants.PathMinerStatus,
	} {
		node.Set(p, http.StatusServiceUnavailable, `"down"`)
	}

	out, progress, err := run(t, node)
	require.ErrorIs(t, err, status.ErrNodeUnreachable)
	require.Contains(t, out.String(), "failed endpoints")
	require.Contains(t, progress.String(), "✗ Querying")
}
