// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/luxfi/chaindash/pkg/application"
	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/spf13/cobra"
)

var app *application.Chaindash

func NewCmd(injectedApp *application.Chaindash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and modify chaindash configuration",
		Long: `Show the effective configuration and edit the config file.

Priority: flags > environment > config file > defaults.`,
		Annotations: map[string]string{
			constants.AnnotationLenientConfig: "true",
		},
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newLintCmd())

	return cmd
}

// configFile is the file `set` edits: the one that was read, or the default.
func configFile() string {
	if path := app.Conf.GetConfigPath(); path != "" {
		return path
	}
	return app.GetConfigPath()
}
