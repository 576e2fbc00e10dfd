package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig holds everything the terminal admin client needs: where the
// server lives, where the local gallery cache sits, and how patient the
// media-URL probe should be.
type ClientConfig struct {
	// Adapter configures the HTTP client talking to the showcase server.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Cache configures the local SQLite gallery cache.
	Cache ClientCache `envPrefix:"CACHE_"`

	// Probe configures the media-URL validation pass run on warm start.
	Probe ClientProbe `envPrefix:"PROBE_"`
}

// ClientAdapter configures the server connection.
type ClientAdapter struct {
	// BaseURL is the showcase server base URL.
	// Env: SHOWCASE_ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every request to the server.
	// Env: SHOWCASE_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientCache configures the local persisted gallery state.
type ClientCache struct {
	// Path is the SQLite database file holding the cached app list,
	// featured/event id sets, and the rollback snapshot.
	// Env: SHOWCASE_CACHE_PATH
	Path string `env:"PATH"`
}

// ClientProbe configures media-URL validation.
type ClientProbe struct {
	// Timeout bounds each per-URL HEAD probe. The probe runs once per
	// record on every warm start, so this also bounds startup latency.
	// Env: SHOWCASE_PROBE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetClientConfig loads the client configuration from environment variables
// (prefix SHOWCASE_) merged over built-in defaults, then validates it.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseClientEnv(cfg); err != nil {
		return nil, err
	}

	if err := mergo.Merge(cfg, clientDefaults()); err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	return cfg, cfg.validate()
}

func parseClientEnv(cfg *ClientConfig) error {
	if err := parseEnvWithPrefix(cfg, "SHOWCASE_"); err != nil {
		return errors.Join(errors.New("client env parse failed"), err)
	}
	return nil
}

func clientDefaults() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Cache: ClientCache{Path: "showcase-cache.db"},
		Probe: ClientProbe{Timeout: 5 * time.Second},
	}
}
