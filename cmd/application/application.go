// Package application provides the interface inventory commands depend on.
//
// Commands accept an Application rather than the concrete App type so they
// can be tested against an in-memory catalog:
//
//	mock := &application.Mock{
//	    CatalogFunc: func() (*inventory.Catalog, error) {
//	        return inventory.NewCatalog(store.NewMemory())
//	    },
//	}
//	cmd := list.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/inventory/pkg/inventory"
)

// Application provides what commands need from the running program.
type Application interface {
	// Catalog returns the catalog backed by the configured store. It is
	// loaded on first use.
	Catalog() (*inventory.Catalog, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the requested output format (table, wide, json,
	// yaml), or "" to detect it from the terminal.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
