package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("LOG_MODE", "")
	t.Setenv("WINDOW_TITLE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, defaultWindowTitle, cfg.WindowTitle)
	require.Empty(t, cfg.TelegramToken)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("LOG_MODE", "release")
	t.Setenv("WINDOW_TITLE", "Segmenter")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, "release", cfg.LogMode)
	require.Equal(t, "Segmenter", cfg.WindowTitle)
}
