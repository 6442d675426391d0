package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName                string        `env:"APP_NAME" env-default:"HSA Engine"`
	AppEnv                 string        `env:"APP_ENV" env-default:"development"`
	Port                   string        `env:"PORT" env-default:"8080"`
	LogLevel               string        `env:"LOG_LEVEL" env-default:"info"`
	LogFormat              string        `env:"LOG_FORMAT" env-default:"json"`
	DatabaseURL            string        `env:"DATABASE_URL"`
	RedisURL               string        `env:"REDIS_URL"`
	ShutdownPeriod         time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	IdempotencyTTL         time.Duration `env:"IDEMPOTENCY_TTL" env-default:"24h"`
	CreateAccountRateLimit int           `env:"CREATE_ACCOUNT_RATE_LIMIT" env-default:"20"`
	CORSAllowOrigins       string        `env:"CORS_ALLOW_ORIGINS" env-default:"*"`
	EligibleKeywords       []string      `env:"ELIGIBLE_KEYWORDS" env-separator:","`
	CardBIN                string        `env:"CARD_BIN" env-default:"4"`
	CardValidityYears      int           `env:"CARD_VALIDITY_YEARS" env-default:"3"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ShutdownPeriod <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.IdempotencyTTL <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL must be positive")
	}
	if c.CardValidityYears <= 0 {
		return fmt.Errorf("CARD_VALIDITY_YEARS must be positive")
	}
	if c.IsDev() {
		return nil
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", c.AppEnv)
	}
	if c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL must be set when APP_ENV=%s", c.AppEnv)
	}
	return nil
}

// IsDev reports whether in-memory fallbacks are allowed.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}
