package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/agentstation/inventory/pkg/errors"
)

// Product is a single inventory record. The name is fixed at creation and
// the category has no setter; price and quantity can only change through
// SetPrice and SetQuantity, which enforce price > 0 and quantity >= 0.
//
// The zero Product is not valid; build one with NewProduct or FromRecord.
type Product struct {
	name     string
	category string
	price    decimal.Decimal
	quantity int
}

// Record is the flat, serialized form of a Product.
type Record struct {
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Price    Amount  `json:"price" yaml:"price"`
	Quantity int     `json:"quantity" yaml:"quantity"`
}

// NewProduct validates and creates a product.
func NewProduct(name, category string, price decimal.Decimal, quantity int) (Product, error) {
	p := Product{name: name, category: category}
	if err := p.SetPrice(price); err != nil {
		return Product{}, err
	}
	if err := p.SetQuantity(quantity); err != nil {
		return Product{}, err
	}
	return p, nil
}

// FromRecord rebuilds a product from its serialized form, applying the same
// validation as NewProduct.
func FromRecord(r Record) (Product, error) {
	return NewProduct(r.Name, r.Category, r.Price.Decimal, r.Quantity)
}

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Category returns the product category.
func (p Product) Category() string { return p.category }

// Price returns the product price.
func (p Product) Price() decimal.Decimal { return p.price }

// Quantity returns the units in stock.
func (p Product) Quantity() int { return p.quantity }

// SetPrice replaces the price. It fails with a *errors.ValidationError and
// leaves the product untouched when price <= 0.
func (p *Product) SetPrice(price decimal.Decimal) error {
	if err := ValidatePrice(price); err != nil {
		return err
	}
	p.price = price
	return nil
}

// SetQuantity replaces the quantity. It fails with a *errors.ValidationError
// and leaves the product untouched when quantity < 0.
func (p *Product) SetQuantity(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	p.quantity = quantity
	return nil
}

// ValidatePrice reports whether price may be stored on a product.
func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errors.NewValidationError("price", price.String(), "must be greater than 0")
	}
	return nil
}

// ValidateQuantity reports whether quantity may be stored on a product.
func ValidateQuantity(quantity int) error {
	if quantity < 0 {
		return errors.NewValidationError("quantity", quantity, "must be 0 or greater")
	}
	return nil
}

// Record returns the serialized form of the product.
func (p Product) Record() Record {
	return Record{
		Name:     p.name,
		Category: p.category,
		Price:    NewAmount(p.price),
		Quantity: p.quantity,
	}
}

// Equal reports whether two products hold the same four fields.
func (p Product) Equal(other Product) bool {
	return p.name == other.name &&
		p.category == other.category &&
		p.price.Equal(other.price) &&
		p.quantity == other.quantity
}

// String renders the one-line summary shown by the front ends.
func (p Product) String() string {
	return fmt.Sprintf("%s (Categoría: %s, Precio: %s, Cantidad: %d)",
		p.name, p.category, formatPrice(p.price), p.quantity)
}

// formatPrice keeps at least one decimal place, so 10 renders as "10.0".
func formatPrice(price decimal.Decimal) string {
	if price.IsInteger() {
		return price.StringFixed(1)
	}
	return price.String()
}
