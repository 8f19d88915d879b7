package catalog

import (
	"fmt"

	"github.com/charcoals/storefront/internal/config"
	"github.com/charcoals/storefront/internal/port"
	"github.com/charcoals/storefront/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Select picks the catalog provider once, from configuration. The pool may
// be nil for the local source.
func Select(cfg config.Config, pool *pgxpool.Pool) (port.CatalogProvider, error) {
	switch cfg.CatalogSource {
	case config.SourceLocal:
		unit, err := cfg.CurrencyUnit()
		if err != nil {
			return nil, fmt.Errorf("cfg.CurrencyUnit: %w", err)
		}
		categories, items, extras := Seed(unit)
		return NewLocal(categories, items, extras), nil

	case config.SourcePostgres:
		if pool == nil {
			return nil, fmt.Errorf("pool is nil for postgres catalog source")
		}
		return repository.NewCatalog(pool), nil

	default:
		return nil, fmt.Errorf("catalog source[%s] is not valid", cfg.CatalogSource)
	}
}
