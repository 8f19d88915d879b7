package port

import (
	"context"

	"github.com/charcoals/storefront/internal/domain"
)

// CatalogProvider is the read-only menu data source. Implementations filter
// out inactive records. An empty categoryID means all categories.
type CatalogProvider interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Items(ctx context.Context, categoryID string) ([]domain.MenuItem, error)
	Extras(ctx context.Context) ([]domain.Extra, error)
}

// CatalogStore adds the administrative operations on top of the provider.
type CatalogStore interface {
	CatalogProvider

	UpsertItem(ctx context.Context, item domain.MenuItem) error
	DeleteItem(ctx context.Context, itemID string) (bool, error)
	ReplaceAll(ctx context.Context, categories []domain.Category, items []domain.MenuItem, extras []domain.Extra) error
}
