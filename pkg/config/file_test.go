// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFileMissing(t *testing.T) {
	settings, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Empty(t, settings)
}

func TestReadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: [unclosed"), 0o644))
	_, err := ReadFile(path)
	require.Error(t, err)
}

func TestSetValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		raw     string
		want    map[string]any
		wantErr string
	}{
		{name: "string", key: "host", raw: "10.0.0.2", want: map[string]any{"host": "10.0.0.2"}},
		{name: "int", key: "port", raw: "9000", want: map[string]any{"port": 9000}},
		{name: "float", key: "animation-rate", raw: "0.25", want: map[string]any{"animation-rate": 0.25}},
		{name: "duration", key: "poll-interval", raw: "2s", want: map[string]any{"poll-interval": "2s"}},
		{
			name: "nested",
			key:  "relay.listen",
			raw:  ":9999",
			want: map[string]any{"relay": map[string]any{"listen": ":9999"}},
		},
		{name: "bad int", key: "port", raw: "eighty", wantErr: "expected integer"},
		{name: "bad duration", key: "request-timeout", raw: "soon", wantErr: "expected duration"},
		{name: "unknown with suggestion", key: "poll-intervall", raw: "1s", wantErr: `did you mean "poll-interval"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := map[string]any{}
			err := SetValue(settings, tt.key, tt.raw)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, settings)
		})
	}
}

func TestSetValueRoundTripsThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	settings := map[string]any{}
	require.NoError(t, SetValue(settings, "port", "9000"))
	require.NoError(t, SetValue(settings, "relay.listen", ":9999"))

	data, err := Marshal(settings)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	read, err := ReadFile(path)
	require.NoError(t, err)
	result := Lint(read)
	require.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 1) // host not set
}
