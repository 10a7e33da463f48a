package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/inventory/pkg/logging"
)

func TestFromContext(t *testing.T) {
	t.Run("falls back to default", func(t *testing.T) {
		assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
	})

	t.Run("returns stored logger", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)

		logging.FromContext(ctx).Info().Msg("from context")
		assert.True(t, testLogger.Contains("from context"))
	})

	t.Run("operation field", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)
		ctx = logging.WithOperation(ctx, "update")

		logging.FromContext(ctx).Debug().Msg("running")
		assert.True(t, testLogger.Contains(`"operation":"update"`))
	})
}

func TestCaptureLoggingForTest(t *testing.T) {
	captured := logging.CaptureLoggingForTest(t)
	logging.Debug().Str("product", "Widget").Msg("captured")
	assert.True(t, captured.Contains("captured"))
	assert.True(t, captured.Contains("Widget"))
}
