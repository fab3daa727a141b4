// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/luxfi/chaindash/pkg/config"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"list"},
		Short:   "Show every configuration value",
		Long:    `Show the effective value of every key after merging flags, environment, config file and defaults.`,
		Args:    cobra.NoArgs,
		RunE:    runShow,
	}
}

func runShow(_ *cobra.Command, _ []string) error {
	settings := app.Conf.Settings()
	rows := make([][2]string, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, [2]string{s.Key, s.Value})
	}
	ux.Logger.PrintKeyValues([2]string{"Key", "Value"}, rows)

	if path := app.Conf.GetConfigPath(); path != "" {
		ux.Logger.PrintToUser("config file: %s", path)
	} else {
		ux.Logger.PrintToUser("config file: none (defaults and environment)")
	}
	if err := app.Conf.Validate(); err != nil {
		ux.Logger.RedXToUser("configuration is invalid: %s", err)
	}
	return nil
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get the effective value of one key.

Examples:
  chaindash config get host
  chaindash config get relay.listen`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}
}

func runGet(_ *cobra.Command, args []string) error {
	key := args[0]
	if !config.IsValidKey(key) {
		return fmt.Errorf("unknown key %q (known keys: %v)", key, config.KnownKeys())
	}
	for _, s := range app.Conf.Settings() {
		if s.Key == key {
			ux.Logger.PrintToUser("%s = %s", key, s.Value)
			return nil
		}
	}
	return fmt.Errorf("key %q has no value", key)
}
