package store

import (
	"slices"

	"github.com/agentstation/inventory/pkg/inventory"
)

// Compile-time interface check.
var _ inventory.Store = (*Memory)(nil)

// Memory is an in-process Store. It keeps its own copy of the list and
// counts saves; tests use it in place of a file.
type Memory struct {
	products []inventory.Product
	saves    int
}

// NewMemory returns a Memory store seeded with products.
func NewMemory(products ...inventory.Product) *Memory {
	return &Memory{products: slices.Clone(products)}
}

// Load returns a copy of the stored products.
func (m *Memory) Load() ([]inventory.Product, error) {
	out := slices.Clone(m.products)
	if out == nil {
		out = []inventory.Product{}
	}
	return out, nil
}

// Save replaces the stored products with a copy of products.
func (m *Memory) Save(products []inventory.Product) error {
	m.products = slices.Clone(products)
	m.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (m *Memory) Saves() int {
	return m.saves
}
