// Package table converts catalog data into rows for the table formatter.
package table

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/inventory/pkg/inventory"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// ProductsToTableData converts products to table rows. The wide layout adds
// the stock value (price × quantity) per product.
func ProductsToTableData(products []inventory.Product, wide bool) Data {
	columns := []string{"name", "category", "price", "quantity"}
	align := []Align{AlignLeft, AlignLeft, AlignRight, AlignRight}
	if wide {
		columns = append(columns, "stock_value")
		align = append(align, AlignRight)
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		row := []string{
			p.Name(),
			dash(p.Category()),
			p.Price().StringFixed(2),
			strconv.Itoa(p.Quantity()),
		}
		if wide {
			row = append(row, StockValue(p).StringFixed(2))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         Headers(columns...),
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// StockValue returns price × quantity.
func StockValue(p inventory.Product) decimal.Decimal {
	return p.Price().Mul(decimal.NewFromInt(int64(p.Quantity())))
}

// Headers title-cases snake_case column keys ("stock_value" → "Stock Value").
func Headers(keys ...string) []string {
	caser := cases.Title(language.English)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = caser.String(strings.ReplaceAll(k, "_", " "))
	}
	return out
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
