package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ROLLCALL_WORKBOOK", "ROLLCALL_LOG_LEVEL", "ROLLCALL_SEED"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.Workbook)
	require.Zero(t, cfg.Seed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ROLLCALL_WORKBOOK", "classes.xlsx")
	t.Setenv("ROLLCALL_LOG_LEVEL", "debug")
	t.Setenv("ROLLCALL_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Config{Workbook: "classes.xlsx", LogLevel: "debug", Seed: 42}, cfg)
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("ROLLCALL_SEED", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env")
}
