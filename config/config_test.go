package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, "https://api.openai.com", cfg.LLM.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "curated", cfg.Designer.Strategy)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.CacheTTL)
	assert.True(t, cfg.Janitor.Enabled)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DESIGNER_STRATEGY", "prompt")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("JANITOR_ENABLED", "false")
	t.Setenv("LLM_REQUESTS_PER_SECOND", "0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "prompt", cfg.Designer.Strategy)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.Janitor.Enabled)
	assert.Equal(t, 0.5, cfg.LLM.RequestsSec)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "not-a-duration")
	t.Setenv("JANITOR_ENABLED", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.Janitor.Enabled)
}

func TestLoad_RejectsUnknownStrategy(t *testing.T) {
	t.Setenv("DESIGNER_STRATEGY", "freehand")

	_, err := Load()
	assert.Error(t, err)
}
