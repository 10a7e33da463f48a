package output

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/inventory/internal/cmd/table"
	"github.com/agentstation/inventory/pkg/inventory"
)

func widget(t *testing.T) inventory.Product {
	t.Helper()
	p, err := inventory.NewProduct("Widget", "Tools", decimal.RequireFromString("9.99"), 5)
	require.NoError(t, err)
	return p
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "WIDE", "json", "yaml", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestFormatProducts(t *testing.T) {
	products := []inventory.Product{widget(t)}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatProducts(&buf, products, FormatJSON))
		assert.JSONEq(t, `[{"name":"Widget","category":"Tools","price":9.99,"quantity":5}]`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatProducts(&buf, products, FormatYAML))
		assert.Contains(t, buf.String(), "- name: Widget")
		assert.Contains(t, buf.String(), "quantity: 5")
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatProducts(&buf, products, FormatTable))
		out := buf.String()
		assert.Contains(t, out, "Widget")
		assert.Contains(t, out, "9.99")
		assert.NotContains(t, out, "49.95")
	})

	t.Run("wide", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatProducts(&buf, products, FormatWide))
		assert.Contains(t, buf.String(), "49.95")
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatProducts(&buf, nil, FormatTable))
		assert.Equal(t, inventory.EmptyIndicator+"\n", buf.String())
	})

	t.Run("empty json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatProducts(&buf, nil, FormatJSON))
		assert.JSONEq(t, `[]`, buf.String())
	})
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"count": 1}))
	assert.JSONEq(t, `{"count":1}`, buf.String())

	buf.Reset()
	require.NoError(t, (&TableFormatter{}).Format(&buf, table.Data{Headers: []string{"A"}, Rows: [][]string{{"x"}}}))
	assert.Contains(t, buf.String(), "x")
}
