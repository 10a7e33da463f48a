package completion

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/inventory/cmd/application"
	"github.com/agentstation/inventory/pkg/inventory"
	"github.com/agentstation/inventory/pkg/store"
)

func TestProductNames(t *testing.T) {
	var products []inventory.Product
	for _, r := range []struct{ name, category string }{
		{"Widget", "Tools"},
		{"Wrench", ""},
		{"Laptop", "Electrónica"},
	} {
		p, err := inventory.NewProduct(r.name, r.category, decimal.NewFromInt(1), 1)
		require.NoError(t, err)
		products = append(products, p)
	}
	cat, err := inventory.NewCatalog(store.NewMemory(products...))
	require.NoError(t, err)

	complete := ProductNames(&application.Mock{
		CatalogFunc: func() (*inventory.Catalog, error) { return cat, nil },
	})

	names, directive := complete(nil, nil, "W")
	assert.Equal(t, []string{"Widget\tTools", "Wrench"}, names)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	names, _ = complete(nil, []string{"Widget"}, "")
	assert.Empty(t, names, "only the first argument is a product name")
}

func TestProductNamesWithoutCatalog(t *testing.T) {
	names, directive := ProductNames(&application.Mock{})(nil, nil, "")
	assert.Empty(t, names)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}

func TestGenerate(t *testing.T) {
	root := &cobra.Command{Use: "inventory"}
	root.AddCommand(NewCommand())

	for _, shell := range Shells {
		var out bytes.Buffer
		require.NoError(t, Generate(root, &out, shell), shell)
		assert.Contains(t, out.String(), "inventory", shell)
	}

	assert.Error(t, Generate(root, &bytes.Buffer{}, "tcsh"))
}
