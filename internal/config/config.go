package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DebounceDelay  time.Duration `env:"FORMTERM_DEBOUNCE" envDefault:"200ms"`
	LogLevel       string        `env:"FORMTERM_LOG_LEVEL" envDefault:"info"`
	LogFile        string        `env:"FORMTERM_LOG_FILE"`
	MessagesFile   string        `env:"FORMTERM_MESSAGES_FILE"`
	DefaultCountry string        `env:"FORMTERM_COUNTRY" envDefault:"us"`
	Debug          bool          `env:"FORMTERM_DEBUG"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; variables already set in
// the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	config.LogLevel = strings.ToLower(config.LogLevel)
	config.DefaultCountry = strings.ToLower(config.DefaultCountry)
	if config.Debug {
		config.LogLevel = "debug"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.DebounceDelay <= 0 {
		return fmt.Errorf("debounce delay must be positive, got: %v", c.DebounceDelay)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", c.LogLevel)
	}

	if c.DefaultCountry == "" {
		return fmt.Errorf("default country must not be empty")
	}

	return nil
}

func GetDefaultConfig() *Config {
	return &Config{
		DebounceDelay:  200 * time.Millisecond,
		LogLevel:       "info",
		DefaultCountry: "us",
	}
}
