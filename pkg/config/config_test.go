// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{constants.EnvServerAddress, constants.EnvServerPort, "CHAINDASH_HOST", "CHAINDASH_PORT", "CHAINDASH_POLL_INTERVAL", "CHAINDASH_RELAY_LISTEN"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load(newViper(t))
	require.NoError(t, err)

	require.Equal(t, constants.DefaultHost, c.Host)
	require.Equal(t, constants.DefaultPort, c.Port)
	require.Equal(t, time.Second, c.PollInterval)
	require.Equal(t, 5*time.Second, c.RequestTimeout)
	require.Equal(t, constants.PathStaking, c.StakingPath)
	require.InDelta(t, 0.4, c.AnimationRate, 1e-9)
	require.Equal(t, "127.0.0.1:8080", c.Address())
	require.False(t, c.ConfigFileExists())
	require.Empty(t, c.GetConfigPath())
}

func TestLoadFromNodeEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvServerAddress, "10.0.0.5")
	t.Setenv(constants.EnvServerPort, "9000")
	t.Setenv("CHAINDASH_POLL_INTERVAL", "250ms")
	t.Setenv("CHAINDASH_RELAY_LISTEN", ":9999")

	c, err := Load(newViper(t))
	require.NoError(t, err)
	require.Equal(t, "10.0.0.5:9000", c.Address())
	require.Equal(t, 250*time.Millisecond, c.PollInterval)
	require.Equal(t, ":9999", c.RelayListen)
}

func TestLoadPrefixedEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHAINDASH_HOST", "node.local")

	c, err := Load(newViper(t))
	require.NoError(t, err)
	require.Equal(t, "node.local", c.Host)
}

func TestIPv6Address(t *testing.T) {
	c := &Config{Host: "::1", Port: 8080}
	require.Equal(t, "[::1]:8080", c.Address())
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: example.org\nport: 1234\nrelay:\n  listen: \":7000\"\n"), 0o600))

	v := newViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	c, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "example.org:1234", c.Address())
	require.Equal(t, ":7000", c.RelayListen)
	require.True(t, c.ConfigFileExists())
	require.Equal(t, path, c.GetConfigPath())
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Host:            "h",
			Port:            1,
			PollInterval:    time.Second,
			RequestTimeout:  time.Second,
			DisplayDecimals: 4,
			StakingPath:     "/node/staking",
			AnimationRate:   0.4,
		}
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"ok", func(*Config) {}, nil},
		{"empty host", func(c *Config) { c.Host = "" }, constants.ErrEmptyHost},
		{"port zero", func(c *Config) { c.Port = 0 }, constants.ErrInvalidPort},
		{"port too big", func(c *Config) { c.Port = 70000 }, constants.ErrInvalidPort},
		{"zero interval", func(c *Config) { c.PollInterval = 0 }, constants.ErrInvalidTimeout},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }, constants.ErrInvalidTimeout},
		{"rate zero", func(c *Config) { c.AnimationRate = 0 }, constants.ErrInvalidRate},
		{"rate above one", func(c *Config) { c.AnimationRate = 1.5 }, constants.ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	c := valid()
	c.DisplayDecimals = 19
	require.Error(t, c.Validate())
	c = valid()
	c.StakingPath = "node/staking"
	require.Error(t, c.Validate())
}

func TestSettingsOrder(t *testing.T) {
	clearEnv(t)
	c, err := Load(newViper(t))
	require.NoError(t, err)

	settings := c.Settings()
	require.Len(t, settings, len(KnownKeys()))
	require.Equal(t, constants.ConfigHost, settings[0].Key)
	for _, s := range settings {
		require.True(t, IsValidKey(s.Key), s.Key)
	}
}

func TestSettingsRoundTripThroughConfigFile(t *testing.T) {
	clearEnv(t)
	want := &Config{
		Host:            "10.1.2.3",
		Port:            9100,
		PollInterval:    2 * time.Second,
		RequestTimeout:  3 * time.Second,
		TokenSymbol:     "TST",
		DisplayDecimals: 2,
		StakingPath:     "/custom/staking",
		AnimationRate:   0.25,
		RelayListen:     "0.0.0.0:9999",
	}
	settings := map[string]any{}
	for _, s := range want.Settings() {
		require.NoError(t, SetValue(settings, s.Key, s.Value), s.Key)
	}
	data, err := Marshal(settings)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	v := newViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	got, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, want.Settings(), got.Settings())
}
