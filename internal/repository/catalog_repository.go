package repository

import (
	"context"
	"fmt"

	"github.com/charcoals/storefront/internal/domain"
	"github.com/charcoals/storefront/internal/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogStore {
	return &catalogRepository{pool: pool}
}

func (r *catalogRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, icon, is_active
		 FROM categories
		 WHERE is_active
		 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.IsActive); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return categories, nil
}

func (r *catalogRepository) Items(ctx context.Context, categoryID string) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, beef_price, chicken_price, currency,
		        category_id, is_popular, is_active, image
		 FROM menu_items
		 WHERE is_active AND ($1 = '' OR category_id = $1)
		 ORDER BY created_at, id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("pool.Query menu_items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanMenuItem: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return items, nil
}

func (r *catalogRepository) Extras(ctx context.Context) ([]domain.Extra, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, price, currency, is_active
		 FROM extras
		 WHERE is_active
		 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query extras: %w", err)
	}
	defer rows.Close()

	var extras []domain.Extra
	for rows.Next() {
		var (
			e      domain.Extra
			amount decimal.Decimal
			code   string
		)
		if err := rows.Scan(&e.ID, &e.Name, &amount, &code, &e.IsActive); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		unit, err := currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", code, err)
		}
		e.Price = domain.Money{Amount: amount, Currency: unit}

		extras = append(extras, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return extras, nil
}

func (r *catalogRepository) UpsertItem(ctx context.Context, item domain.MenuItem) error {
	if item.ID == "" {
		return fmt.Errorf("item ID is empty")
	}
	if item.BeefPrice.Currency != item.ChickenPrice.Currency {
		return fmt.Errorf("variant currencies differ: %s vs %s",
			item.BeefPrice.Currency, item.ChickenPrice.Currency)
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO menu_items
		   (id, name, description, beef_price, chicken_price, currency,
		    category_id, is_popular, is_active, image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name,
		   description = EXCLUDED.description,
		   beef_price = EXCLUDED.beef_price,
		   chicken_price = EXCLUDED.chicken_price,
		   currency = EXCLUDED.currency,
		   category_id = EXCLUDED.category_id,
		   is_popular = EXCLUDED.is_popular,
		   is_active = EXCLUDED.is_active,
		   image = EXCLUDED.image`,
		item.ID, item.Name, item.Description,
		item.BeefPrice.Amount, item.ChickenPrice.Amount, item.BeefPrice.Currency.String(),
		item.CategoryID, item.IsPopular, item.IsActive, item.Image)
	if err != nil {
		return fmt.Errorf("pool.Exec upsert menu_item: %w", err)
	}

	return nil
}

func (r *catalogRepository) DeleteItem(ctx context.Context, itemID string) (bool, error) {
	if itemID == "" {
		return false, fmt.Errorf("item ID is empty")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, itemID)
	if err != nil {
		return false, fmt.Errorf("pool.Exec delete menu_item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ReplaceAll swaps the whole catalog in one transaction, for seeding and
// imports.
func (r *catalogRepository) ReplaceAll(ctx context.Context, categories []domain.Category, items []domain.MenuItem, extras []domain.Extra) error {
	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		for _, table := range []string{"extras", "menu_items", "categories"} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return zero, fmt.Errorf("tx.Exec delete %s: %w", table, err)
			}
		}

		for _, c := range categories {
			_, err := tx.Exec(ctx,
				`INSERT INTO categories (id, name, icon, is_active) VALUES ($1, $2, $3, $4)`,
				c.ID, c.Name, c.Icon, c.IsActive)
			if err != nil {
				return zero, fmt.Errorf("tx.Exec insert category[%s]: %w", c.ID, err)
			}
		}

		for _, item := range items {
			_, err := tx.Exec(ctx,
				`INSERT INTO menu_items
				   (id, name, description, beef_price, chicken_price, currency,
				    category_id, is_popular, is_active, image)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				item.ID, item.Name, item.Description,
				item.BeefPrice.Amount, item.ChickenPrice.Amount, item.BeefPrice.Currency.String(),
				item.CategoryID, item.IsPopular, item.IsActive, item.Image)
			if err != nil {
				return zero, fmt.Errorf("tx.Exec insert menu_item[%s]: %w", item.ID, err)
			}
		}

		for _, e := range extras {
			_, err := tx.Exec(ctx,
				`INSERT INTO extras (id, name, price, currency, is_active) VALUES ($1, $2, $3, $4, $5)`,
				e.ID, e.Name, e.Price.Amount, e.Price.Currency.String(), e.IsActive)
			if err != nil {
				return zero, fmt.Errorf("tx.Exec insert extra[%s]: %w", e.ID, err)
			}
		}

		return zero, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func scanMenuItem(rows pgx.Rows) (domain.MenuItem, error) {
	var (
		item    domain.MenuItem
		beef    decimal.Decimal
		chicken decimal.Decimal
		code    string
		descr   *string
		image   *string
	)

	err := rows.Scan(&item.ID, &item.Name, &descr, &beef, &chicken, &code,
		&item.CategoryID, &item.IsPopular, &item.IsActive, &image)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("rows.Scan: %w", err)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	if descr != nil {
		item.Description = *descr
	}
	if image != nil {
		item.Image = *image
	}
	item.BeefPrice = domain.Money{Amount: beef, Currency: unit}
	item.ChickenPrice = domain.Money{Amount: chicken, Currency: unit}

	return item, nil
}
