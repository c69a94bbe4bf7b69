package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the server configuration, read from the environment.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	Env      string `env:"ENV" envDefault:"development"`
	GinMode  string `env:"GIN_MODE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// WordsSource is a file path, an http(s) URL, or "embedded".
	WordsSource  string `env:"WORDS_SOURCE" envDefault:"data/words.txt"`
	SoundsPrefix string `env:"SOUNDS_PREFIX" envDefault:"/static/sounds/"`

	SessionTimeout  time.Duration `env:"SESSION_TIMEOUT" envDefault:"2h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
	CookieMaxAge    time.Duration `env:"COOKIE_MAX_AGE" envDefault:"2h"`
	StaticCacheAge  time.Duration `env:"STATIC_CACHE_AGE" envDefault:"5m"`
	RateLimitRPS    int           `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// loadConfig reads an optional .env file and then the process environment.
func loadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the server runs in release mode.
func (c Config) IsProduction() bool {
	return c.GinMode == "release" || c.Env == "production"
}

// envName returns the label used in logs and the health check.
func (c Config) envName() string {
	if c.IsProduction() {
		return "production"
	}
	return "development"
}
