// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/chaindash/pkg/config"
	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/ux"
	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [config-file]",
		Short: "Validate a chaindash configuration file",
		Long: `Validate a configuration file for errors. Without an argument the file
that would be edited by set is checked.

Reports:
  - Unknown configuration keys (with typo suggestions)
  - Invalid value types (e.g., "abc" for a duration)

Example:
  chaindash config lint ~/.chaindash/config.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLint,
	}
}

func runLint(_ *cobra.Command, args []string) error {
	configPath := configFile()
	if len(args) == 1 {
		configPath = args[0]
	}
	if _, err := os.Stat(configPath); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	settings, err := config.ReadFile(configPath)
	if err != nil {
		return err
	}
	result := config.Lint(settings)

	// Print results
	for _, e := range result.Errors {
		ux.Logger.PrintToUser("ERROR: %s", e)
	}
	for _, w := range result.Warnings {
		ux.Logger.PrintToUser("WARN: %s", w)
	}

	// Summary
	ux.Logger.PrintToUser("%d errors, %d warnings", len(result.Errors), len(result.Warnings))

	if len(result.Errors) > 0 {
		return fmt.Errorf("%s has %d errors", configPath, len(result.Errors))
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return err
	}
	return os.WriteFile(path, data, constants.WriteReadReadPerms)
}
