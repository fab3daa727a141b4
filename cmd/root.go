// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"syscall"

	"github.com/luxfi/chaindash/cmd/configcmd"
	"github.com/luxfi/chaindash/cmd/dashboardcmd"
	"github.com/luxfi/chaindash/cmd/minercmd"
	"github.com/luxfi/chaindash/cmd/servecmd"
	"github.com/luxfi/chaindash/cmd/stakecmd"
	"github.com/luxfi/chaindash/cmd/statuscmd"
	"github.com/luxfi/chaindash/pkg/application"
	"github.com/luxfi/chaindash/pkg/config"
	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/prompts"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	app *application.Chaindash

	logLevel       string
	Version        = "0.3.0"
	cfgFile        string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "chaindash",
		Long: `chaindash - Terminal dashboard and control client for a chain node.

chaindash talks to the node's HTTP API. It shows how much the node has
staked and its share of the network total, the miner state and the chain
statistics, and lets you stake, unstake and start or stop mining.

COMMAND OVERVIEW:

  dashboard   Live terminal dashboard
  stake       Stake an amount
  unstake     Unstake an amount
  miner       Miner status, start and stop
  status      One-shot snapshot of every panel
  serve       Relay the dashboard over HTTP and websocket
  config      Show, get, set and lint configuration

NODE ADDRESS:

  Resolved from --host/--port, then ENMC_SERVER_ADDRESS/ENMC_SERVER_PORT,
  then the config file (~/.chaindash/config.yaml), then 127.0.0.1:8080.

QUICK START:

  chaindash dashboard
  chaindash stake 10.5
  chaindash miner start --password-file ./pw
  chaindash status --output json`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chaindash/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "WARN", "log level for the application")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")
	rootCmd.PersistentFlags().String(constants.ConfigHost, "", "node host (overrides ENMC_SERVER_ADDRESS)")
	rootCmd.PersistentFlags().Int(constants.ConfigPort, 0, "node port (overrides ENMC_SERVER_PORT)")

	rootCmd.AddCommand(dashboardcmd.NewCmd(app))
	rootCmd.AddCommand(stakecmd.NewStakeCmd(app))
	rootCmd.AddCommand(stakecmd.NewUnstakeCmd(app))
	rootCmd.AddCommand(minercmd.NewCmd(app))
	rootCmd.AddCommand(statuscmd.NewCmd(app))
	rootCmd.AddCommand(servecmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}

	display := displayLevel(cmd)
	log, err := setupLogging(baseDir, display, !hasAnnotation(cmd, constants.AnnotationFullscreen))
	if err != nil {
		return err
	}

	conf, err := initConfig(cmd, log)
	if err != nil {
		return err
	}

	var prompter prompts.Prompter = prompts.NewPrompter()
	if mode := prompts.DetectMode(nonInteractive); !mode.Interactive {
		log.Debug("prompting disabled", zap.String("reason", mode.Reason))
		prompter = prompts.NewNonInteractivePrompterWithMessage(
			fmt.Sprintf("prompting is disabled (%s); pass the value as an argument or flag", mode.Reason))
	}
	app.Setup(baseDir, log, conf, prompter)
	return nil
}

// hasAnnotation reports whether cmd or one of its parents carries key.
func hasAnnotation(cmd *cobra.Command, key string) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[key]; ok {
			return true
		}
	}
	return false
}

// displayLevel picks the console log level. The shortcut flags win over
// --log-level.
func displayLevel(cmd *cobra.Command) zapcore.Level {
	flags := cmd.Flags()
	switch {
	case flags.Changed("debug"):
		return zapcore.DebugLevel
	case flags.Changed("verbose"):
		return zapcore.InfoLevel
	case flags.Changed("quiet"):
		return zapcore.ErrorLevel
	}
	if lvl, err := zapcore.ParseLevel(logLevel); err == nil {
		return lvl
	}
	return zapcore.WarnLevel
}

func setupEnv() (string, error) {
	// Set base dir
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	// Create base dir if it doesn't exist
	err = os.MkdirAll(baseDir, 0o750)
	if err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

// setupLogging writes JSON logs to a rotated file and, unless console is
// false, human readable logs at the display level to stderr.
func setupLogging(baseDir string, display zapcore.Level, console bool) (*zap.Logger, error) {
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	fileLevel := zapcore.InfoLevel
	if display < fileLevel {
		fileLevel = display
	}
	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.LogFileName),
		MaxSize:    constants.MaxLogFileSize,
		MaxBackups: constants.MaxNumOfLogFiles,
		MaxAge:     constants.RetainOldFiles,
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(rotated), fileLevel),
	}
	if console {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), display))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named("chaindash")
	// create the user facing logger as a global var
	// User output goes to stdout, logs go to stderr
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(cmd *cobra.Command, log *zap.Logger) (*config.Config, error) {
	v := viper.GetViper()
	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		// Search for config in ~/.chaindash/ directory
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Join(home, constants.BaseDirName))
		v.SetConfigType(constants.DefaultConfigFileType)
		v.SetConfigName(constants.DefaultConfigFileName)
	}

	config.SetDefaults(v)
	config.BindEnv(v)
	for _, key := range []string{constants.ConfigHost, constants.ConfigPort} {
		if f := cmd.Flags().Lookup(key); f != nil && f.Changed {
			_ = v.BindPFlag(key, f)
		}
	}

	if err := v.ReadInConfig(); err == nil {
		log.Debug("using config file", zap.String("config-file", v.ConfigFileUsed()))
	} else {
		var notFound viper.ConfigFileNotFoundError
		// No config file is normal, one named by --config must exist
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if hasAnnotation(cmd, constants.AnnotationLenientConfig) {
		conf := config.Read(v)
		if err := conf.Validate(); err != nil {
			log.Warn("configuration is invalid", zap.Error(err))
		}
		return conf, nil
	}
	conf, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return conf, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app = application.New()
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(stakecmd.AmountArgs(os.Args[1:]))
	err := rootCmd.ExecuteContext(ctx)
	if app.Log != nil {
		_ = app.Log.Sync()
	}
	if err != nil {
		reportError(os.Stderr, app.Log, err)
		stop()
		os.Exit(1)
	}
}

// reportError shows a failed command on w and records it in the log file.
func reportError(w io.Writer, log *zap.Logger, err error) {
	ux.New(log, w).PrintError("%s", err)
	if log != nil {
		_ = log.Sync()
	}
}
