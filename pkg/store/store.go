// Package store persists the inventory to a single file. Each Load reads
// the whole file and each Save rewrites it through a temp file and rename,
// so readers never observe a half-written inventory.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/inventory/pkg/constants"
	"github.com/agentstation/inventory/pkg/errors"
	"github.com/agentstation/inventory/pkg/inventory"
	"github.com/agentstation/inventory/pkg/logging"
)

// Compile-time interface check.
var _ inventory.Store = (*Store)(nil)

// Store reads and writes the product list to one file.
type Store struct {
	path   string
	format Format
}

// New returns a Store for path. An empty path uses constants.DefaultStoreFile.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = constants.DefaultStoreFile
	}
	s := &Store{path: path, format: FormatAuto}
	for _, opt := range opts {
		opt(s)
	}
	if s.format == FormatAuto {
		s.format = FormatFromPath(path)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Format returns the resolved file format.
func (s *Store) Format() Format {
	return s.format
}

// Load returns the products in the file, or an empty list if the file does
// not exist. A file that cannot be decoded, or that holds an invalid
// product, fails with a *errors.ParseError.
func (s *Store) Load() ([]inventory.Product, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debug().Str("path", s.path).Msg("Inventory file not found, starting empty")
		return []inventory.Product{}, nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", s.path, err)
	}

	records, err := s.decode(data)
	if err != nil {
		return nil, errors.WrapParse(s.format.String(), s.path, err)
	}

	products := make([]inventory.Product, 0, len(records))
	for i, r := range records {
		p, err := inventory.FromRecord(r)
		if err != nil {
			return nil, errors.NewParseError(s.format.String(), s.path, fmt.Sprintf("record %d (%q): %v", i, r.Name, err), err)
		}
		products = append(products, p)
	}

	logging.Debug().
		Str("path", s.path).
		Str("format", s.format.String()).
		Int("count", len(products)).
		Msg("Inventory loaded")

	return products, nil
}

// Save replaces the file with products, in order.
func (s *Store) Save(products []inventory.Product) error {
	records := make([]inventory.Record, 0, len(products))
	for _, p := range products {
		records = append(records, p.Record())
	}

	data, err := s.encode(records)
	if err != nil {
		return errors.WrapResource("encode", "inventory", s.path, err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}

	logging.Debug().
		Str("path", s.path).
		Int("count", len(records)).
		Msg("Inventory saved")
	return nil
}

func (s *Store) decode(data []byte) ([]inventory.Record, error) {
	var entries []fileRecord
	switch s.format {
	case FormatJSON:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
	}

	records := make([]inventory.Record, len(entries))
	for i, e := range entries {
		records[i] = e.record()
	}
	return records, nil
}

func (s *Store) encode(records []inventory.Record) ([]byte, error) {
	switch s.format {
	case FormatJSON:
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "    ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(records); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return yaml.MarshalWithOptions(records,
			yaml.Indent(2),
			yaml.IndentSequence(false),
		)
	}
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place. The temp file is removed on any failure.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, constants.TempFilePattern)
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.WrapIO("write", tmpPath, err)
	}
	if err = tmp.Chmod(constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		return errors.WrapIO("sync", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return errors.WrapIO("close", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
