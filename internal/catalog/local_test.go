package catalog_test

import (
	"testing"

	"github.com/charcoals/storefront/internal/catalog"
	"github.com/charcoals/storefront/internal/config"
	"github.com/charcoals/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestLocalFiltersInactive(t *testing.T) {
	ctx := t.Context()
	unit := currency.MustParseISO("EGP")

	categories := []domain.Category{
		{ID: "burgers", Name: "برجر", IsActive: true},
		{ID: "retired", Name: "قديم", IsActive: false},
	}
	items := []domain.MenuItem{
		{ID: "a", CategoryID: "burgers", BeefPrice: domain.MoneyFromInt(50, unit), ChickenPrice: domain.MoneyFromInt(45, unit), IsActive: true},
		{ID: "b", CategoryID: "burgers", BeefPrice: domain.MoneyFromInt(60, unit), ChickenPrice: domain.MoneyFromInt(55, unit), IsActive: false},
		{ID: "c", CategoryID: "retired", BeefPrice: domain.MoneyFromInt(30, unit), ChickenPrice: domain.MoneyFromInt(30, unit), IsActive: true},
	}
	extras := []domain.Extra{
		{ID: "cheese", Price: domain.MoneyFromInt(10, unit), IsActive: true},
		{ID: "gone", Price: domain.MoneyFromInt(5, unit), IsActive: false},
	}

	provider := catalog.NewLocal(categories, items, extras)

	gotCategories, err := provider.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, gotCategories, 1)
	assert.Equal(t, "burgers", gotCategories[0].ID)

	gotItems, err := provider.Items(ctx, "")
	require.NoError(t, err)
	assert.Len(t, gotItems, 2)

	gotItems, err = provider.Items(ctx, "burgers")
	require.NoError(t, err)
	require.Len(t, gotItems, 1)
	assert.Equal(t, "a", gotItems[0].ID)

	gotExtras, err := provider.Extras(ctx)
	require.NoError(t, err)
	require.Len(t, gotExtras, 1)
	assert.Equal(t, "cheese", gotExtras[0].ID)
}

func TestSeedIsConsistent(t *testing.T) {
	unit := currency.MustParseISO("EGP")

	categories, items, extras := catalog.Seed(unit)
	require.NotEmpty(t, categories)
	require.NotEmpty(t, items)
	require.NotEmpty(t, extras)

	known := make(map[string]bool)
	for _, c := range categories {
		known[c.ID] = true
	}

	for _, item := range items {
		assert.True(t, known[item.CategoryID], "item %s references unknown category %s", item.ID, item.CategoryID)
		assert.Equal(t, unit, item.BeefPrice.Currency)
		assert.Equal(t, unit, item.ChickenPrice.Currency)
	}
	for _, e := range extras {
		assert.Equal(t, unit, e.Price.Currency)
	}
}

func TestSelect(t *testing.T) {
	t.Run("local source needs no pool", func(t *testing.T) {
		provider, err := catalog.Select(config.Config{CatalogSource: config.SourceLocal, Currency: "EGP"}, nil)
		require.NoError(t, err)

		items, err := provider.Items(t.Context(), "")
		require.NoError(t, err)
		assert.NotEmpty(t, items)
	})

	t.Run("postgres source requires a pool", func(t *testing.T) {
		_, err := catalog.Select(config.Config{CatalogSource: config.SourcePostgres, Currency: "EGP"}, nil)
		require.Error(t, err)
	})

	t.Run("unknown source is rejected", func(t *testing.T) {
		_, err := catalog.Select(config.Config{CatalogSource: "csv", Currency: "EGP"}, nil)
		require.Error(t, err)
	})
}
