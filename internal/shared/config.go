package shared

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppEnv         string        `env:"APP_ENV" envDefault:"prod"`
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	MetricsAddr    string        `env:"METRICS_ADDR"`
	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPass      string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"15m"`
	RateLimit      float64       `env:"RATE_LIMIT" envDefault:"10"`
	RateBurst      int           `env:"RATE_BURST" envDefault:"20"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

func Load() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT and RATE_BURST must be positive, got %v/%d", c.RateLimit, c.RateBurst)
	}
	return c, nil
}

// CacheEnabled reports whether a Redis page cache is configured.
func (c Config) CacheEnabled() bool { return c.RedisAddr != "" }
