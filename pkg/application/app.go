// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"os"
	"path/filepath"

	"github.com/luxfi/chaindash/pkg/config"
	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/nodeclient"
	"github.com/luxfi/chaindash/pkg/prompts"
	"go.uber.org/zap"
)

// Chaindash carries what every command needs: logger, resolved config,
// prompter and the base directory under the user's home.
type Chaindash struct {
	Log     *zap.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
}

func New() *Chaindash {
	return &Chaindash{}
}

func (app *Chaindash) Setup(baseDir string, log *zap.Logger, conf *config.Config, prompt prompts.Prompter) {
	if log == nil {
		log = zap.NewNop()
	}
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
}

func (app *Chaindash) GetBaseDir() string {
	return app.baseDir
}

func (app *Chaindash) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Chaindash) GetLogFile() string {
	return filepath.Join(app.GetLogDir(), constants.LogFileName)
}

// GetConfigPath is where `config set` writes when no config file was read.
func (app *Chaindash) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
}

func (app *Chaindash) ConfigFileExists() bool {
	if app.Conf != nil && app.Conf.ConfigFileExists() {
		return true
	}
	_, err := os.Stat(app.GetConfigPath())
	return err == nil
}

// NewClient returns a node API client for the configured address.
func (app *Chaindash) NewClient() *nodeclient.Client {
	return nodeclient.New(app.Conf.Address(), app.Conf.RequestTimeout, app.Log.Named("node"))
}

func (*Chaindash) writeFile(path string, bytes []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return err
	}
	return os.WriteFile(path, bytes, constants.WriteReadReadPerms)
}

// WriteConfigFile replaces the default config file.
func (app *Chaindash) WriteConfigFile(data []byte) error {
	return app.writeFile(app.GetConfigPath(), data)
}
