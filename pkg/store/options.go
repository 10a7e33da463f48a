package store

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the encoding of the inventory file.
type Format int

// Format constants.
const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	FormatYAML
	FormatJSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	}
	return "unknown"
}

// ParseFormat converts a config or flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid store format %q: must be one of: auto, yaml, json", s)
	}
}

// FormatFromPath returns FormatJSON for .json files and FormatYAML otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Option configures a Store.
type Option func(*Store)

// WithFormat forces the file format instead of guessing from the extension.
func WithFormat(f Format) Option {
	return func(s *Store) {
		s.format = f
	}
}
