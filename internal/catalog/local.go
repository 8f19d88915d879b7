package catalog

import (
	"context"

	"github.com/charcoals/storefront/internal/domain"
)

// Local serves the menu from in-memory seed data. It mirrors the remote
// provider's behavior: inactive records are filtered out and an empty
// category filter returns everything.
type Local struct {
	categories []domain.Category
	items      []domain.MenuItem
	extras     []domain.Extra
}

func NewLocal(categories []domain.Category, items []domain.MenuItem, extras []domain.Extra) *Local {
	return &Local{
		categories: append([]domain.Category(nil), categories...),
		items:      append([]domain.MenuItem(nil), items...),
		extras:     append([]domain.Extra(nil), extras...),
	}
}

func (l *Local) Categories(_ context.Context) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range l.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (l *Local) Items(_ context.Context, categoryID string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, item := range l.items {
		if !item.IsActive {
			continue
		}
		if categoryID != "" && item.CategoryID != categoryID {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (l *Local) Extras(_ context.Context) ([]domain.Extra, error) {
	var out []domain.Extra
	for _, e := range l.extras {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}
