// Package constants holds values shared across the inventory packages.
package constants

// File permission constants.
const (
	// DirPermissions is the permission for created directories (rwxr-xr-x).
	DirPermissions = 0755

	// FilePermissions is the permission for the inventory file (rw-r--r--).
	FilePermissions = 0644
)

// Store defaults.
const (
	// DefaultStoreFile is the inventory file used when no path is configured.
	DefaultStoreFile = "inventory.yaml"

	// TempFilePattern names the scratch file written before an atomic rename.
	TempFilePattern = ".inventory-*.tmp"
)

// Configuration lookup.
const (
	// ConfigName is the config file base name searched in $HOME and cwd.
	ConfigName = ".inventory"

	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "INVENTORY"
)
