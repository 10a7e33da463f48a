package store

import (
	"github.com/agentstation/inventory/pkg/inventory"
)

// fileRecord is one entry as read from disk. Besides the current keys it
// accepts the Spanish keys (nombre, categoria, precio, cantidad) used by
// inventario.json files from the earlier tool. When both spellings of a
// field are present the English key wins. Save always writes English keys.
type fileRecord struct {
	Name     *string           `json:"name" yaml:"name"`
	Category *string           `json:"category" yaml:"category"`
	Price    *inventory.Amount `json:"price" yaml:"price"`
	Quantity *int              `json:"quantity" yaml:"quantity"`

	Nombre    *string           `json:"nombre" yaml:"nombre"`
	Categoria *string           `json:"categoria" yaml:"categoria"`
	Precio    *inventory.Amount `json:"precio" yaml:"precio"`
	Cantidad  *int              `json:"cantidad" yaml:"cantidad"`
}

func (f fileRecord) record() inventory.Record {
	return inventory.Record{
		Name:     firstSet(f.Name, f.Nombre),
		Category: firstSet(f.Category, f.Categoria),
		Price:    firstSet(f.Price, f.Precio),
		Quantity: firstSet(f.Quantity, f.Cantidad),
	}
}

// firstSet returns the first non-nil value, or the zero value.
func firstSet[T any](values ...*T) T {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	var zero T
	return zero
}
