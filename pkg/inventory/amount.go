package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a price as it is written to disk: the exact decimal, encoded
// as a bare number in both JSON and YAML so no digits are lost to float64.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON writes the decimal as an unquoted JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.parse(data)
}

// MarshalYAML writes the decimal as a plain YAML scalar.
func (a Amount) MarshalYAML() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalYAML accepts a YAML number or a quoted decimal string.
func (a *Amount) UnmarshalYAML(data []byte) error {
	return a.parse(data)
}

func (a *Amount) parse(data []byte) error {
	text := strings.Trim(strings.TrimSpace(string(data)), `"'`)
	d, err := decimal.NewFromString(text)
	if err != nil {
		return fmt.Errorf("price %q is not a decimal number: %w", text, err)
	}
	a.Decimal = d
	return nil
}
