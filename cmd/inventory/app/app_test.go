package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/inventory/pkg/errors"
	"github.com/agentstation/inventory/pkg/logging"
	"github.com/agentstation/inventory/pkg/store"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	isolate(t)
	logger := logging.Nop
	app, err := New("1.2.3", "abc123", "2026-01-01", "test", append([]Option{WithLogger(&logger)}, opts...)...)
	require.NoError(t, err)
	return app
}

// run executes the CLI with in-memory I/O and returns stdout.
func run(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAppVersionInfo(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, "1.2.3", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2026-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())

	out, err := run(t, app, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "inventory 1.2.3\n", out)

	out, err = run(t, app, "", "version", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:   abc123")
}

func TestAppCatalogIsLoadedOnce(t *testing.T) {
	mem := store.NewMemory()
	app := newTestApp(t, WithStore(mem))

	first, err := app.Catalog()
	require.NoError(t, err)
	second, err := app.Catalog()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestAppFileStoreRoundTrip(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "inventario.json")

	_, err := run(t, app, "", "--file", path, "add", "Widget", "-c", "Tools", "-p", "9.99", "-n", "5")
	require.NoError(t, err)

	// A fresh app sees what the first one saved.
	reopened := newTestApp(t)
	out, err := run(t, reopened, "", "--file", path, "-o", "json", "search", "Widget")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Widget","category":"Tools","price":9.99,"quantity":5}`, out)
}

func TestAppCommandOutcomes(t *testing.T) {
	app := newTestApp(t, WithStore(store.NewMemory()))

	_, err := run(t, app, "", "add", "Widget", "-p", "1", "-n", "1")
	require.NoError(t, err)

	_, err = run(t, app, "", "add", "Widget", "-p", "1", "-n", "1")
	assert.True(t, errors.IsAlreadyExists(err))
	assert.Equal(t, 1, exitCode(err))

	_, err = run(t, app, "", "delete", "Nope")
	assert.True(t, errors.IsNotFound(err))
}

func TestAppRootRunsMenu(t *testing.T) {
	mem := store.NewMemory()
	app := newTestApp(t, WithStore(mem))

	out, err := run(t, app, "1\nWidget\nTools\n9.99\n5\n4\n6\n")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Menú de Gestión de Inventario ---")
	assert.Contains(t, out, "Widget (Categoría: Tools, Precio: 9.99, Cantidad: 5)")
	assert.Contains(t, out, "Saliendo del programa.")
	assert.Equal(t, 1, mem.Saves())

	out, err = run(t, app, "", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Saliendo del programa.")
}

func TestAppCorruptFile(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: [unclosed\n"), 0o644))

	_, err := run(t, app, "", "--file", path, "list")
	require.Error(t, err)
	assert.True(t, errors.IsCorruptData(err))
	assert.Equal(t, 2, exitCode(err))
}

func TestWithConfigRejectsNil(t *testing.T) {
	isolate(t)
	_, err := New("dev", "", "", "", WithConfig(nil))
	assert.Error(t, err)
}

func TestShutdown(t *testing.T) {
	app := newTestApp(t, WithStore(store.NewMemory()))
	assert.NoError(t, app.Shutdown(context.Background()))

	_, err := app.Catalog()
	require.NoError(t, err)
	assert.NoError(t, app.Shutdown(context.Background()))
}

func TestAppCompletion(t *testing.T) {
	app := newTestApp(t, WithStore(store.NewMemory()))

	_, err := run(t, app, "", "add", "Widget", "-c", "Tools", "-p", "1", "-n", "1")
	require.NoError(t, err)

	out, err := run(t, app, "", "__complete", "delete", "Wi")
	require.NoError(t, err)
	assert.Contains(t, out, "Widget\tTools")

	out, err = run(t, app, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "inventory")
}
