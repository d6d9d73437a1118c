package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIOrigin     string `env:"ADSPACE_API_ORIGIN,     default=http://localhost:8080"`
	TrackerOrigin string `env:"ADSPACE_TRACKER_ORIGIN, default=http://localhost:8081"`
	Env           string `env:"ADSPACE_ENV,            default=development"`
	LogLevel      string `env:"ADSPACE_LOG_LEVEL,      default=info"`

	Session SessionConfig
	Server  ServerConfig
}

// SessionConfig selects where the persisted session lives.
type SessionConfig struct {
	// Backend is one of: file, sqlite, redis.
	Backend  string `env:"ADSPACE_SESSION_BACKEND, default=file"`
	StateDir string `env:"ADSPACE_STATE_DIR"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"ADSPACE_REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"ADSPACE_REDIS_DB,   default=0"`
}

// ServerConfig configures the bundled development server.
type ServerConfig struct {
	Port      string `env:"ADSPACE_DEV_PORT,   default=8080"`
	JWTSecret string `env:"ADSPACE_JWT_SECRET, default=dev-secret"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
