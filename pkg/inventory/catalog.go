// Package inventory holds the product entity and the catalog that keeps an
// ordered, name-keyed list of products in sync with a Store.
//
// Every mutation is written through to the store before the in-memory list
// changes, so the catalog and the file it was loaded from never disagree:
//
//	cat, err := inventory.NewCatalog(store.New("inventory.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, _ := inventory.NewProduct("Widget", "Tools", decimal.RequireFromString("9.99"), 5)
//	outcome, err := cat.Add(p)
package inventory

import (
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/agentstation/inventory/pkg/errors"
	"github.com/agentstation/inventory/pkg/logging"
)

// Store loads and saves the full product list.
type Store interface {
	Load() ([]Product, error)
	Save(products []Product) error
}

// EmptyIndicator is rendered instead of a blank listing.
const EmptyIndicator = "El inventario está vacío."

// Catalog is the in-memory product list. It is not safe for concurrent use.
type Catalog struct {
	store    Store
	products []Product
}

// NewCatalog loads the product list from store.
func NewCatalog(store Store) (*Catalog, error) {
	if store == nil {
		return nil, errors.NewConfigError("catalog", "store is required", nil)
	}

	products, err := store.Load()
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", "", err)
	}

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.Name()]; dup {
			return nil, errors.NewParseError("catalog", "", fmt.Sprintf("duplicate product name %q", p.Name()), nil)
		}
		seen[p.Name()] = struct{}{}
	}

	logging.Debug().Int("count", len(products)).Msg("Catalog loaded")

	return &Catalog{store: store, products: products}, nil
}

// Find returns the first product named name. The returned value is a copy.
func (c *Catalog) Find(name string) (Product, bool) {
	i := c.index(name)
	if i < 0 {
		return Product{}, false
	}
	return c.products[i], true
}

// Add appends product and persists the catalog. A product whose name is
// already present is not added and yields OutcomeExists.
func (c *Catalog) Add(product Product) (Outcome, error) {
	if c.index(product.Name()) >= 0 {
		return OutcomeExists, nil
	}
	if err := ValidatePrice(product.Price()); err != nil {
		return 0, err
	}
	if err := ValidateQuantity(product.Quantity()); err != nil {
		return 0, err
	}

	next := append(slices.Clone(c.products), product)
	if err := c.commit(next); err != nil {
		return 0, errors.WrapResource("add", "product", product.Name(), err)
	}

	logging.Debug().Str("product", product.Name()).Msg("Product added")
	return OutcomeAdded, nil
}

// Update sets the price and/or quantity of the named product. Nil fields are
// left unchanged; with both nil the catalog is still persisted. If either
// value is invalid, neither is applied.
func (c *Catalog) Update(name string, price *decimal.Decimal, quantity *int) (Outcome, error) {
	i := c.index(name)
	if i < 0 {
		return OutcomeNotFound, nil
	}

	// Changes go to a copy; a rejected value leaves the catalog untouched.
	updated := c.products[i]
	if price != nil {
		if err := updated.SetPrice(*price); err != nil {
			return 0, err
		}
	}
	if quantity != nil {
		if err := updated.SetQuantity(*quantity); err != nil {
			return 0, err
		}
	}

	next := slices.Clone(c.products)
	next[i] = updated
	if err := c.commit(next); err != nil {
		return 0, errors.WrapResource("update", "product", name, err)
	}

	logging.Debug().
		Str("product", name).
		Bool("price", price != nil).
		Bool("quantity", quantity != nil).
		Msg("Product updated")
	return OutcomeUpdated, nil
}

// Delete removes the first product named name and persists the catalog.
func (c *Catalog) Delete(name string) (Outcome, error) {
	i := c.index(name)
	if i < 0 {
		return OutcomeNotFound, nil
	}

	next := slices.Delete(slices.Clone(c.products), i, i+1)
	if err := c.commit(next); err != nil {
		return 0, errors.WrapResource("delete", "product", name, err)
	}

	logging.Debug().Str("product", name).Msg("Product deleted")
	return OutcomeDeleted, nil
}

// List returns a copy of the products in insertion order.
func (c *Catalog) List() []Product {
	return slices.Clone(c.products)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Render writes the listing, one product per line, or EmptyIndicator.
func (c *Catalog) Render(w io.Writer) error {
	if len(c.products) == 0 {
		_, err := fmt.Fprintln(w, EmptyIndicator)
		return err
	}
	if _, err := fmt.Fprintln(w, "Inventario:"); err != nil {
		return err
	}
	for _, p := range c.products {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}
	return nil
}

// commit saves next and adopts it only if the save succeeded.
func (c *Catalog) commit(next []Product) error {
	if err := c.store.Save(next); err != nil {
		return err
	}
	c.products = next
	return nil
}

func (c *Catalog) index(name string) int {
	for i, p := range c.products {
		if p.Name() == name {
			return i
		}
	}
	return -1
}
