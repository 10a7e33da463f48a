package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/inventory/pkg/errors"
)

func TestNotFoundError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("product", "Widget")
		assert.Equal(t, `product "Widget" not found`, err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.False(t, pkgerrors.IsAlreadyExists(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("delete: %w", pkgerrors.NewNotFoundError("product", "x"))
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	err := pkgerrors.NewAlreadyExistsError("product", "Widget")
	assert.Equal(t, `product "Widget" already exists`, err.Error())
	assert.True(t, pkgerrors.IsAlreadyExists(err))
	assert.True(t, errors.Is(err, pkgerrors.ErrAlreadyExists))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("price", "-1", "must be greater than 0")
		assert.Equal(t, "invalid price -1: must be greater than 0", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad product"}
		assert.Equal(t, "validation failed: bad product", err.Error())
	})
}

func TestInputFormatError(t *testing.T) {
	base := errors.New("syntax")
	err := pkgerrors.NewInputFormatError("price", "abc", base)

	assert.Equal(t, `price "abc" is not a valid number`, err.Error())
	assert.True(t, pkgerrors.IsInputFormat(err))
	assert.False(t, pkgerrors.IsValidationError(err))
	assert.ErrorIs(t, err, base)
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := pkgerrors.NewParseError("yaml", "inventory.yaml", "unexpected mapping", nil)
		assert.Equal(t, "parse error in yaml file inventory.yaml: unexpected mapping", err.Error())
		assert.True(t, pkgerrors.IsCorruptData(err))
	})

	t.Run("without file", func(t *testing.T) {
		err := pkgerrors.NewParseError("json", "", "unexpected EOF", nil)
		assert.Equal(t, "json parse error: unexpected EOF", err.Error())
	})

	t.Run("wrap keeps cause", func(t *testing.T) {
		base := pkgerrors.NewValidationError("quantity", -1, "must be 0 or greater")
		err := pkgerrors.WrapParse("yaml", "f.yaml", base)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsCorruptData(err))
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("yaml", "x", nil))
	assert.NoError(t, pkgerrors.WrapResource("load", "catalog", "", nil))

	base := errors.New("permission denied")

	ioErr := pkgerrors.WrapIO("write", "/tmp/x", base)
	var target *pkgerrors.IOError
	require.True(t, errors.As(ioErr, &target))
	assert.Equal(t, "write", target.Operation)
	assert.Equal(t, "IO error during write of /tmp/x: permission denied", ioErr.Error())
	assert.ErrorIs(t, ioErr, base)

	resErr := pkgerrors.WrapResource("load", "catalog", "", base)
	assert.Equal(t, "failed to load catalog: permission denied", resErr.Error())
	assert.ErrorIs(t, resErr, base)
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("store", "unknown format", nil)
	assert.Equal(t, "configuration error in store: unknown format", err.Error())

	err = &pkgerrors.ConfigError{Message: "missing path"}
	assert.Equal(t, "configuration error: missing path", err.Error())
}
