package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/inventory/pkg/errors"
	"github.com/agentstation/inventory/pkg/inventory"
)

// Mock is an Application for tests. Nil funcs fall back to harmless
// defaults; a nil CatalogFunc reports a configuration error.
type Mock struct {
	CatalogFunc func() (*inventory.Catalog, error)
	LoggerFunc  func() *zerolog.Logger
	Format      string
	VersionInfo string
}

var _ Application = (*Mock)(nil)

// Catalog implements Application.
func (m *Mock) Catalog() (*inventory.Catalog, error) {
	if m.CatalogFunc == nil {
		return nil, errors.NewConfigError("mock", "no catalog configured", nil)
	}
	return m.CatalogFunc()
}

// Logger implements Application.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc == nil {
		logger := zerolog.Nop()
		return &logger
	}
	return m.LoggerFunc()
}

// OutputFormat implements Application.
func (m *Mock) OutputFormat() string { return m.Format }

// Version implements Application.
func (m *Mock) Version() string {
	if m.VersionInfo == "" {
		return "dev"
	}
	return m.VersionInfo
}

// Commit implements Application.
func (m *Mock) Commit() string { return "unknown" }

// Date implements Application.
func (m *Mock) Date() string { return "unknown" }

// BuiltBy implements Application.
func (m *Mock) BuiltBy() string { return "unknown" }
