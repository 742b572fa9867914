package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// ErrMissingJWTSecret is fatal: the process must not start without a signing
// secret.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET is required")

type Config struct {
	Port     string `env:"PORT,           default=8080"`
	Env      string `env:"ENV,            default=development"`
	BaseURL  string `env:"BASE_URL,       default=http://localhost:8080"`
	LogLevel string `env:"LOG_LEVEL,      default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY,     default=1h"`

	RateLimitMax    int64         `env:"RATE_LIMIT_MAX,    default=100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=time_tracking"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing signing secret is a configuration error, not a default.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	return &cfg, nil
}

// IsProduction reports whether stack traces and other debug detail must be
// suppressed in responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
