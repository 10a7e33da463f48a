package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/inventory/pkg/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Run("json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log.json")
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "debug",
			Format: "json",
			Output: path,
		})
		logger.Debug().Str("product", "Widget").Msg("saved")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"product":"Widget"`)
		assert.Contains(t, string(content), `"level":"debug"`)
	})

	t.Run("console format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log.txt")
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:   "info",
			Format:  "console",
			Output:  path,
			NoColor: true,
		})
		logger.Info().Msg("console test")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "console test")
		assert.Contains(t, string(content), "INF")
	})

	t.Run("level filtering", func(t *testing.T) {
		testCases := []struct {
			level string
			want  zerolog.Level
		}{
			{"trace", zerolog.TraceLevel},
			{"debug", zerolog.DebugLevel},
			{"info", zerolog.InfoLevel},
			{"warning", zerolog.WarnLevel},
			{"error", zerolog.ErrorLevel},
			{"off", zerolog.Disabled},
			{"bogus", zerolog.WarnLevel},
			{"", zerolog.WarnLevel},
		}
		for _, tc := range testCases {
			logger := logging.NewLoggerFromConfig(&logging.Config{Level: tc.level, Output: "discard"})
			assert.Equal(t, tc.want, logger.GetLevel(), "level %q", tc.level)
		}
	})

	t.Run("nil config", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})
}

func TestConfigure(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	path := filepath.Join(t.TempDir(), "log.json")
	logging.Configure(&logging.Config{Level: "warn", Format: "json", Output: path})

	logging.Info().Msg("info message")
	logging.Warn().Msg("warn message")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
}
