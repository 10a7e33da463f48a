// Package input parses the numbers users type into the front ends. Both the
// menu and the command tree go through here, so a malformed number is
// reported the same way and never reaches the catalog.
package input

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agentstation/inventory/pkg/errors"
)

// ParsePrice parses a decimal price such as "9.99".
func ParsePrice(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, errors.NewInputFormatError("price", s, err)
	}
	return d, nil
}

// ParseQuantity parses a whole number of units.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.NewInputFormatError("quantity", s, err)
	}
	return n, nil
}

// ParseOptionalPrice returns nil for blank input, meaning "leave unchanged".
func ParseOptionalPrice(s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := ParsePrice(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseOptionalQuantity returns nil for blank input, meaning "leave unchanged".
func ParseOptionalQuantity(s string) (*int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	n, err := ParseQuantity(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
