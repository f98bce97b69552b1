package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALC_TEST_VALUE=from-file\n"), 0644))

	t.Run("ENV_PATH wins over default path", func(t *testing.T) {
		t.Setenv("ENV_PATH", path)
		t.Setenv("CALC_TEST_VALUE", "")
		require.NoError(t, os.Unsetenv("CALC_TEST_VALUE"))

		require.NoError(t, LoadDotEnv("local", filepath.Join(dir, "missing.env")))
		assert.Equal(t, "from-file", os.Getenv("CALC_TEST_VALUE"))
	})

	t.Run("missing file fails in local mode", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")

		assert.Error(t, LoadDotEnv("local", filepath.Join(dir, "missing.env")))
	})

	t.Run("missing file is skipped outside local mode", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")

		assert.NoError(t, LoadDotEnv("production", filepath.Join(dir, "missing.env")))
	})
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		raw      string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.raw)
			assert.Equal(t, tt.expected, LogLevel(slog.LevelInfo))
		})
	}
}
