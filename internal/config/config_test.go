package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, "redis", cfg.ProfileStore)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("PROFILE_STORE", "postgres")
	t.Setenv("PRIMARY_MODEL", "gemini-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "postgres", cfg.ProfileStore)
	assert.Equal(t, "gemini-test", cfg.PrimaryModel)
}

func TestLoadRejectsUnknownProfileStore(t *testing.T) {
	t.Setenv("PROFILE_STORE", "sqlite")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROFILE_STORE")
}
