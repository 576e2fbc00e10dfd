package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "showcase-cache.db", cfg.Cache.Path)
	assert.Equal(t, 5*time.Second, cfg.Probe.Timeout)
}

func TestGetClientConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SHOWCASE_ADAPTER_BASE_URL", "https://showcase.example.com")
	t.Setenv("SHOWCASE_PROBE_TIMEOUT", "2s")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://showcase.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Probe.Timeout)
}
