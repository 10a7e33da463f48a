package output

import (
	"fmt"
	"io"

	"github.com/agentstation/inventory/internal/cmd/table"
	"github.com/agentstation/inventory/pkg/inventory"
)

// FormatProducts writes products in the given format. An empty list in a
// table format prints the empty-inventory indicator instead of a bare header.
func FormatProducts(w io.Writer, products []inventory.Product, format Format) error {
	switch format {
	case FormatJSON, FormatYAML:
		records := make([]inventory.Record, 0, len(products))
		for _, p := range products {
			records = append(records, p.Record())
		}
		return NewFormatter(format).Format(w, records)
	default:
		if len(products) == 0 {
			_, err := fmt.Fprintln(w, inventory.EmptyIndicator)
			return err
		}
		return NewFormatter(format).Format(w, table.ProductsToTableData(products, format == FormatWide))
	}
}
