// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".chaindash"
	LogDir      = "logs"
	LogFileName = "chaindash.log"

	DefaultConfigFileName = "config"
	DefaultConfigFileType = "yaml"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	// TokenDecimals is the fixed-point scale of every amount the node reports.
	TokenDecimals = 18

	DefaultHost            = "127.0.0.1"
	DefaultPort            = 8080
	DefaultPollInterval    = 1 * time.Second
	DefaultRequestTimeout  = 5 * time.Second
	DefaultTokenSymbol     = "ENMC"
	DefaultDisplayDecimals = 4
	DefaultAnimationRate   = 0.4
	DefaultRelayListen     = "127.0.0.1:8091"

	AnimationFrame  = 60 * time.Millisecond
	ToastDuration   = 4 * time.Second
	ShutdownTimeout = 5 * time.Second
	RelayWriteWait  = 10 * time.Second
	RatePlaceholder = "-"
)

// Environment variables naming the node address. These are the names the
// browser build read at bundle time, without the bundler prefix.
const (
	EnvServerAddress = "ENMC_SERVER_ADDRESS"
	EnvServerPort    = "ENMC_SERVER_PORT"
	EnvPrefix        = "CHAINDASH"
)

// Config keys
const (
	ConfigHost            = "host"
	ConfigPort            = "port"
	ConfigPollInterval    = "poll-interval"
	ConfigRequestTimeout  = "request-timeout"
	ConfigTokenSymbol     = "token-symbol"
	ConfigDisplayDecimals = "display-decimals"
	ConfigStakingPath     = "staking-path"
	ConfigAnimationRate   = "animation-rate"
	ConfigRelayListen     = "relay.listen"
)

// Node HTTP API paths
const (
	PathTotalStaking   = "/node/total-staking"
	PathStaking        = "/node/staking"
	PathEqualizeStatus = "/node/equalize-status"
	PathBalance        = "/node/balance"
	PathTotalSupply    = "/node/total-supply"
	PathExpectedReward = "/miner/expected-reward"
	PathMinerStatus    = "/miner/status"
	PathStake          = "/transaction/stake"
	PathUnstake        = "/transaction/unstake"
	PathStartMining    = "/miner/start-mining"
	PathStopMining     = "/miner/stop-mining"
)

// Command annotations read by the root command.
const (
	// AnnotationFullscreen marks commands that own the terminal. Log lines
	// are kept off stderr while they run.
	AnnotationFullscreen = "chaindash/fullscreen"
	// AnnotationLenientConfig marks commands that must run even when the
	// resolved configuration does not validate.
	AnnotationLenientConfig = "chaindash/lenient-config"
)
