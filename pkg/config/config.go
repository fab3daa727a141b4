// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/spf13/viper"
)

// Config is the resolved client configuration. It is read once at startup.
type Config struct {
	Host            string
	Port            int
	PollInterval    time.Duration
	RequestTimeout  time.Duration
	TokenSymbol     string
	DisplayDecimals int
	StakingPath     string
	AnimationRate   float64
	RelayListen     string

	v *viper.Viper
}

// SetDefaults registers the default for every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.ConfigHost, constants.DefaultHost)
	v.SetDefault(constants.ConfigPort, constants.DefaultPort)
	v.SetDefault(constants.ConfigPollInterval, constants.DefaultPollInterval)
	v.SetDefault(constants.ConfigRequestTimeout, constants.DefaultRequestTimeout)
	v.SetDefault(constants.ConfigTokenSymbol, constants.DefaultTokenSymbol)
	v.SetDefault(constants.ConfigDisplayDecimals, constants.DefaultDisplayDecimals)
	v.SetDefault(constants.ConfigStakingPath, constants.PathStaking)
	v.SetDefault(constants.ConfigAnimationRate, constants.DefaultAnimationRate)
	v.SetDefault(constants.ConfigRelayListen, constants.DefaultRelayListen)
}

// BindEnv maps the node address variables onto their keys, ahead of the
// CHAINDASH_ prefixed names that cover every other key.
func BindEnv(v *viper.Viper) {
	_ = v.BindEnv(constants.ConfigHost, constants.EnvServerAddress, constants.EnvPrefix+"_HOST")
	_ = v.BindEnv(constants.ConfigPort, constants.EnvServerPort, constants.EnvPrefix+"_PORT")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// Load resolves the configuration from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	c := Read(v)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Read resolves the configuration from v without validating it.
func Read(v *viper.Viper) *Config {
	return &Config{
		Host:            strings.TrimSpace(v.GetString(constants.ConfigHost)),
		Port:            v.GetInt(constants.ConfigPort),
		PollInterval:    v.GetDuration(constants.ConfigPollInterval),
		RequestTimeout:  v.GetDuration(constants.ConfigRequestTimeout),
		TokenSymbol:     v.GetString(constants.ConfigTokenSymbol),
		DisplayDecimals: v.GetInt(constants.ConfigDisplayDecimals),
		StakingPath:     v.GetString(constants.ConfigStakingPath),
		AnimationRate:   v.GetFloat64(constants.ConfigAnimationRate),
		RelayListen:     v.GetString(constants.ConfigRelayListen),
		v:               v,
	}
}

func (c *Config) Validate() error {
	if c.Host == "" {
		return constants.ErrEmptyHost
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", constants.ErrInvalidPort, c.Port)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval %s", constants.ErrInvalidTimeout, c.PollInterval)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout %s", constants.ErrInvalidTimeout, c.RequestTimeout)
	}
	if c.AnimationRate <= 0 || c.AnimationRate > 1 {
		return fmt.Errorf("%w: %v", constants.ErrInvalidRate, c.AnimationRate)
	}
	if c.DisplayDecimals < 0 || c.DisplayDecimals > constants.TokenDecimals {
		return fmt.Errorf("display decimals must be between 0 and %d, got %d", constants.TokenDecimals, c.DisplayDecimals)
	}
	if !strings.HasPrefix(c.StakingPath, "/") {
		return fmt.Errorf("staking path must start with '/', got %q", c.StakingPath)
	}
	return nil
}

// Address is the node's host:port.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ConfigFileExists reports whether a config file was read.
func (c *Config) ConfigFileExists() bool {
	return c.v != nil && c.v.ConfigFileUsed() != ""
}

// GetConfigPath returns the path to the configuration file
func (c *Config) GetConfigPath() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}

// Setting is one resolved key for display.
type Setting struct {
	Key   string
	Value string
}

// Settings lists every key with its effective value, in a stable order.
func (c *Config) Settings() []Setting {
	return []Setting{
		{constants.ConfigHost, c.Host},
		{constants.ConfigPort, strconv.Itoa(c.Port)},
		{constants.ConfigPollInterval, c.PollInterval.String()},
		{constants.ConfigRequestTimeout, c.RequestTimeout.String()},
		{constants.ConfigTokenSymbol, c.TokenSymbol},
		{constants.ConfigDisplayDecimals, strconv.Itoa(c.DisplayDecimals)},
		{constants.ConfigStakingPath, c.StakingPath},
		{constants.ConfigAnimationRate, strconv.FormatFloat(c.AnimationRate, 'f', -1, 64)},
		{constants.ConfigRelayListen, c.RelayListen},
	}
}
