package main

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atlas/internal/config"
	"github.com/alexisbeaulieu97/atlas/internal/logger"
	"github.com/alexisbeaulieu97/atlas/internal/storage"
)

// AppContext bundles state shared by every command of one invocation.
type AppContext struct {
	configPath string
	verbose    bool
	sessionID  string

	cfg *config.Config
}

func newAppContext() *AppContext {
	return &AppContext{sessionID: uuid.NewString()}
}

// Config loads the configuration once per invocation.
func (a *AppContext) Config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", a.describeConfigPath(), err,
			"Run 'atlas config validate' to see what is wrong, or 'atlas config init' to start over.")
	}
	a.cfg = cfg
	return cfg, nil
}

// Logger builds a logger writing to w, tagged with the session id.
func (a *AppContext) Logger(w io.Writer, humanReadable bool) (*logger.Logger, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if a.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: humanReadable, Writer: w})
	if err != nil {
		return nil, err
	}
	return log.With("session_id", a.sessionID), nil
}

// CommandLogger returns a stderr logger tagged with the command name.
func (a *AppContext) CommandLogger(cmd *cobra.Command, name string) (*logger.Logger, error) {
	log, err := a.Logger(cmd.ErrOrStderr(), true)
	if err != nil {
		return nil, err
	}
	return log.With("command", name), nil
}

// OpenStore opens the local key/value store.
func (a *AppContext) OpenStore(ctx context.Context) (*storage.Store, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(ctx, cfg.Storage.Path)
	if err != nil {
		return nil, newCommandError("open local storage", cfg.Storage.Path, err,
			"Check that the storage.path directory is writable.")
	}
	return store, nil
}

func (a *AppContext) describeConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultPath()
}
