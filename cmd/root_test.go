// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestReportErrorPrintsAndLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var stderr bytes.Buffer

	reportError(&stderr, zap.New(core), errors.New("node unreachable"))

	require.Equal(t, "\nERROR: node unreachable\n\n", stderr.String())
	require.Equal(t, 1, logs.FilterMessage("node unreachable").Len())
}

func TestReportErrorWithoutLogger(t *testing.T) {
	var stderr bytes.Buffer
	reportError(&stderr, nil, errors.New("bad flag"))
	require.Contains(t, stderr.String(), "ERROR: bad flag")
}
