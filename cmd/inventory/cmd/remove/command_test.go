package remove

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/inventory/cmd/application"
	"github.com/agentstation/inventory/pkg/errors"
	"github.com/agentstation/inventory/pkg/inventory"
	"github.com/agentstation/inventory/pkg/store"
)

func TestDelete(t *testing.T) {
	p, err := inventory.NewProduct("Widget", "Tools", decimal.RequireFromString("9.99"), 5)
	require.NoError(t, err)
	mem := store.NewMemory(p)
	cat, err := inventory.NewCatalog(mem)
	require.NoError(t, err)
	app := &application.Mock{
		CatalogFunc: func() (*inventory.Catalog, error) { return cat, nil },
	}

	run := func(args ...string) (string, error) {
		cmd := NewCommand(app)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := run("Widget")
	require.NoError(t, err)
	assert.Equal(t, "Producto 'Widget' eliminado del inventario.\n", out)
	assert.Equal(t, 0, cat.Len())
	assert.Equal(t, 1, mem.Saves())

	_, err = run("Widget")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, `product "Widget" not found`, err.Error())
	assert.Equal(t, 1, mem.Saves())
}

func TestDeleteCatalogError(t *testing.T) {
	cmd := NewCommand(&application.Mock{})
	cmd.SetArgs([]string{"Widget"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
