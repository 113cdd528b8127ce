package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/wildquiz/wildquiz-api/internal/ratelimit"
)

type Config struct {
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=168h"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	CORSOrigins []string      `env:"CORS_ORIGINS"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=wildquiz"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// RateLimitConfig carries the fixed-window policies per route class.
// Store selects the backing counter: "memory" (per process) or "redis"
// (shared across instances).
type RateLimitConfig struct {
	Store string `env:"RATELIMIT_STORE, default=memory"`

	LoginMax       int           `env:"RATELIMIT_LOGIN_MAX,       default=5"`
	LoginWindow    time.Duration `env:"RATELIMIT_LOGIN_WINDOW,    default=15m"`
	RegisterMax    int           `env:"RATELIMIT_REGISTER_MAX,    default=3"`
	RegisterWindow time.Duration `env:"RATELIMIT_REGISTER_WINDOW, default=1h"`
	GeneralMax     int           `env:"RATELIMIT_GENERAL_MAX,     default=100"`
	GeneralWindow  time.Duration `env:"RATELIMIT_GENERAL_WINDOW,  default=15m"`
}

func (r RateLimitConfig) LoginPolicy() ratelimit.Policy {
	return ratelimit.Policy{MaxRequests: r.LoginMax, Window: r.LoginWindow}
}

func (r RateLimitConfig) RegisterPolicy() ratelimit.Policy {
	return ratelimit.Policy{MaxRequests: r.RegisterMax, Window: r.RegisterWindow}
}

func (r RateLimitConfig) GeneralPolicy() ratelimit.Policy {
	return ratelimit.Policy{MaxRequests: r.GeneralMax, Window: r.GeneralWindow}
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
