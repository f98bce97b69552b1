package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCliConfig_ShowPrompt(t *testing.T) {
	tests := []struct {
		mode        string
		interactive bool
		expected    bool
	}{
		{"auto", true, true},
		{"auto", false, false},
		{"always", false, true},
		{"never", true, false},
	}

	for _, tt := range tests {
		show, err := cliConfig{Prompt: tt.mode}.showPrompt(tt.interactive)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, show, "mode %s interactive %v", tt.mode, tt.interactive)
	}

	_, err := cliConfig{Prompt: "sometimes"}.showPrompt(true)
	assert.Error(t, err)
}

func TestCliConfig_Level(t *testing.T) {
	level, err := cliConfig{LogLevel: "debug"}.level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = cliConfig{LogLevel: "chatty"}.level()
	assert.Error(t, err)
}
