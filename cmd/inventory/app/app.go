// Package app wires configuration, logging, and the catalog for the
// inventory CLI and builds its command tree.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/inventory/cmd/application"
	"github.com/agentstation/inventory/pkg/errors"
	"github.com/agentstation/inventory/pkg/inventory"
	"github.com/agentstation/inventory/pkg/store"
)

// App holds the configuration, logger, and catalog shared by every
// command. It is not safe for concurrent use; the CLI runs one command
// at a time.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// store overrides the configured file store when set.
	store inventory.Store

	// catalog is loaded on first use.
	catalog *inventory.Catalog
}

var _ application.Application = (*App)(nil)

// New creates an App with configuration loaded from the environment and
// config file. Flags are applied later, when a command runs.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig(nil)
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Catalog returns the catalog, loading it from the store on first use.
func (a *App) Catalog() (*inventory.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}

	s, err := a.buildStore()
	if err != nil {
		return nil, err
	}

	catalog, err := inventory.NewCatalog(s)
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("file", a.config.StorePath).
		Int("products", catalog.Len()).
		Msg("Catalog ready")

	a.catalog = catalog
	return catalog, nil
}

// Shutdown releases resources. Every mutation is already on disk, so
// there is nothing to flush.
func (a *App) Shutdown(_ context.Context) error {
	if a.catalog != nil {
		a.logger.Debug().Int("products", a.catalog.Len()).Msg("Shutting down")
	}
	return nil
}

func (a *App) buildStore() (inventory.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	format, err := store.ParseFormat(a.config.StoreFormat)
	if err != nil {
		return nil, errors.NewConfigError("store", err.Error(), err)
	}
	return store.New(a.config.StorePath, store.WithFormat(format)), nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("app", "config cannot be nil", nil)
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore replaces the file store (useful for testing).
func WithStore(s inventory.Store) Option {
	return func(a *App) error {
		a.store = s
		return nil
	}
}
