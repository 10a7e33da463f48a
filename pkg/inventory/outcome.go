package inventory

import (
	"github.com/agentstation/inventory/pkg/errors"
)

// Outcome is the result of a catalog mutation. Missing and duplicate names
// are expected outcomes, not errors.
type Outcome int

// Outcome values.
const (
	OutcomeAdded Outcome = iota + 1
	OutcomeUpdated
	OutcomeDeleted
	OutcomeExists
	OutcomeNotFound
)

// OK reports whether the mutation was applied.
func (o Outcome) OK() bool {
	switch o {
	case OutcomeAdded, OutcomeUpdated, OutcomeDeleted:
		return true
	}
	return false
}

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeUpdated:
		return "updated"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeExists:
		return "exists"
	case OutcomeNotFound:
		return "not found"
	}
	return "unknown"
}

// Message returns the user-facing sentence for the outcome on product name.
func (o Outcome) Message(name string) string {
	switch o {
	case OutcomeAdded:
		return "Producto '" + name + "' agregado al inventario."
	case OutcomeUpdated:
		return "Producto '" + name + "' actualizado."
	case OutcomeDeleted:
		return "Producto '" + name + "' eliminado del inventario."
	case OutcomeExists:
		return "El producto ya existe en el inventario."
	case OutcomeNotFound:
		return "Producto '" + name + "' no encontrado en el inventario."
	}
	return ""
}

// Err converts a negative outcome into a typed error for callers that need
// one, such as a command that must exit non-zero. Positive outcomes yield nil.
func (o Outcome) Err(name string) error {
	switch o {
	case OutcomeExists:
		return errors.NewAlreadyExistsError("product", name)
	case OutcomeNotFound:
		return errors.NewNotFoundError("product", name)
	}
	return nil
}
