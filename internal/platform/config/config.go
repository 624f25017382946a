// Package config loads server configuration from the environment so main stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures HTTP server and core tuning configuration.
type Server struct {
	Addr      string `env:"ARCANA_ADDR" envDefault:":8080"`
	DeckDir   string `env:"ARCANA_DECK_DIR" envDefault:"deck"`
	StaticDir string `env:"ARCANA_STATIC_DIR"`

	// PoolSize is how many cards a shuffle offers; PickCount how many the
	// client must choose for a reading.
	PoolSize  int `env:"ARCANA_POOL_SIZE" envDefault:"8"`
	PickCount int `env:"ARCANA_PICK_COUNT" envDefault:"7"`

	SessionTTL    time.Duration `env:"ARCANA_SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"ARCANA_SWEEP_INTERVAL" envDefault:"5m"`

	Redis Redis
}

// Redis configures the optional Redis-backed session store. An empty URL means
// sessions stay in process memory.
type Redis struct {
	URL          string        `env:"ARCANA_REDIS_URL"`
	PoolSize     int           `env:"ARCANA_REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"ARCANA_REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"ARCANA_REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"ARCANA_REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"ARCANA_REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// Load builds a Server config from environment variables.
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env config: %w", err)
	}
	if cfg.PoolSize < cfg.PickCount {
		return Server{}, fmt.Errorf("pool size %d smaller than pick count %d", cfg.PoolSize, cfg.PickCount)
	}
	return cfg, nil
}
