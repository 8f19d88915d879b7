package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/currency"
)

const (
	SourceLocal    = "local"
	SourcePostgres = "postgres"
)

// Config is read once at startup; the catalog source choice is never
// re-checked per call.
type Config struct {
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"local"`
	DatabaseURL   string `env:"DATABASE_URL"`

	Currency    string `env:"CURRENCY" envDefault:"EGP"`
	CartKey     string `env:"CART_KEY" envDefault:"charcoals_cart"`
	CustomerKey string `env:"CUSTOMER_KEY" envDefault:"charcoals_customer"`

	CacheVersion string        `env:"CACHE_VERSION" envDefault:"v1"`
	ShellPaths   []string      `env:"SHELL_PATHS" envSeparator:"," envDefault:"/"`
	OrderDelay   time.Duration `env:"ORDER_DELAY" envDefault:"400ms"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if cfg.CatalogSource != SourceLocal && cfg.CatalogSource != SourcePostgres {
		return Config{}, fmt.Errorf("catalog source[%s] is not valid", cfg.CatalogSource)
	}
	if cfg.CatalogSource == SourcePostgres && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required for the postgres catalog source")
	}

	if _, err := cfg.CurrencyUnit(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err)
	}
	return unit, nil
}
