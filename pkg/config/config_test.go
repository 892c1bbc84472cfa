package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "us", cfg.Country)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 900*time.Millisecond, cfg.DebounceDelay)
	assert.Equal(t, 20, cfg.DefaultPageSize)

	// Without a sources file the default NewsAPI source is used
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "newsapi", cfg.Sources[0].Name)
	assert.Equal(t, "newsapi", cfg.Sources[0].Adapter)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("DEBOUNCE_DELAY", "100ms")
	t.Setenv("DEFAULT_PAGE_SIZE", "50")

	cfg := Load()

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, 100*time.Millisecond, cfg.DebounceDelay)
	assert.Equal(t, 50, cfg.DefaultPageSize)
}

func TestLoad_DurationAsIntegerSeconds(t *testing.T) {
	t.Setenv("CACHE_TTL", "120")
	cfg := Load()
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DEFAULT_PAGE_SIZE", "lots")
	cfg := Load()
	assert.Equal(t, 20, cfg.DefaultPageSize)
}
