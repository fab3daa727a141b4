// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"strings"

	"github.com/luxfi/chaindash/pkg/config"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a value in the config file (~/.chaindash/config.yaml, or the file
given with --config).

Keys:
  ` + strings.Join(config.KnownKeys(), "\n  ") + `

Examples:
  chaindash config set host 10.0.0.5
  chaindash config set poll-interval 2s
  chaindash config set relay.listen 0.0.0.0:8091`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	path := configFile()

	settings, err := config.ReadFile(path)
	if err != nil {
		return err
	}
	if err := config.SetValue(settings, key, value); err != nil {
		return err
	}
	if result := config.Lint(settings); len(result.Errors) > 0 {
		return fmt.Errorf("%s would be invalid: %s", path, strings.Join(result.Errors, "; "))
	}

	data, err := config.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if path == app.GetConfigPath() {
		err = app.WriteConfigFile(data)
	} else {
		err = writeFile(path, data)
	}
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ux.Logger.GreenCheckmarkToUser("Set %s = %s in %s", key, value, path)
	return nil
}
