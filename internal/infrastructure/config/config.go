package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIURL is the origin of the wholesale ordering backend.
	APIURL   string `env:"ORDERDESK_API_URL, default=http://localhost:8000"`
	LogLevel string `env:"LOG_LEVEL,         default=info"`

	// HTTPTimeout bounds outbound API calls. Zero means no timeout: a hung
	// call hangs the issuing command, matching the web client's behaviour.
	HTTPTimeout time.Duration `env:"ORDERDESK_HTTP_TIMEOUT, default=0"`

	Store StoreConfig
	Redis RedisConfig
}

// StoreConfig selects the durable key-value backend.
type StoreConfig struct {
	// Backend is "file" or "redis".
	Backend string `env:"ORDERDESK_STORE, default=file"`
	// Dir holds the file backend's state; empty resolves to
	// $HOME/.orderdesk at startup.
	Dir string `env:"ORDERDESK_STATE_DIR"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
