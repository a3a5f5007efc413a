package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PLAN_PATH", "plans/today.yaml")
	t.Setenv("PLAN_SYMBOL", "")
	t.Setenv("PLAN_POLL_SCHEDULE", "")
	t.Setenv("PLAN_TICK_SIZE", "")
	t.Setenv("PLAN_WATCH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "plans/today.yaml", cfg.PlanPath)
	assert.Empty(t, cfg.Symbol)
	assert.Equal(t, "@every 2s", cfg.PollSchedule)
	assert.Equal(t, 0.25, cfg.TickSize)
	assert.False(t, cfg.Watch)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PLAN_PATH", "p.yaml")
	t.Setenv("PLAN_SYMBOL", "NQZ5")
	t.Setenv("PLAN_POLL_SCHEDULE", "*/5 * * * * *")
	t.Setenv("PLAN_TICK_SIZE", "0.1")
	t.Setenv("PLAN_WATCH", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "NQZ5", cfg.Symbol)
	assert.Equal(t, "*/5 * * * * *", cfg.PollSchedule)
	assert.Equal(t, 0.1, cfg.TickSize)
	assert.True(t, cfg.Watch)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PLAN_PATH", "p.yaml")
	t.Setenv("PLAN_TICK_SIZE", "quarter")
	t.Setenv("PLAN_WATCH", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.TickSize)
	assert.False(t, cfg.Watch)
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("PLAN_PATH", "")
	_, err := Load()
	assert.EqualError(t, err, "PLAN_PATH is required")

	t.Setenv("PLAN_PATH", "p.yaml")
	t.Setenv("PLAN_TICK_SIZE", "-1")
	_, err = Load()
	assert.EqualError(t, err, "PLAN_TICK_SIZE must be positive")
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PLAN_SYMBOL=ESZ5\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("PLAN_PATH", "p.yaml")
	t.Setenv("PLAN_SYMBOL", "")
	require.NoError(t, os.Unsetenv("PLAN_SYMBOL"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ESZ5", cfg.Symbol)
}
