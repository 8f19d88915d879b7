package repository_test

import (
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/charcoals/storefront/internal/domain"
	"github.com/charcoals/storefront/internal/port"
	"github.com/charcoals/storefront/internal/repository"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type catalogRepositorySuite struct {
	suite.Suite

	catalog port.CatalogStore
	pool    *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestCatalogRepositorySuite(t *testing.T) {
	suite.Run(t, new(catalogRepositorySuite))
}

// before all tests in the suite
func (suite *catalogRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.catalog = repository.NewCatalog(suite.pool)
}

// after all tests in the suite
func (suite *catalogRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *catalogRepositorySuite) TestReplaceAllAndList() {
	t := suite.T()
	ctx := t.Context()

	active := randomCategory(true)
	inactive := randomCategory(false)

	items := []domain.MenuItem{
		randomMenuItem(active.ID, true),
		randomMenuItem(active.ID, true),
		randomMenuItem(inactive.ID, false),
	}
	extras := []domain.Extra{
		randomExtra(true),
		randomExtra(false),
	}

	err := suite.catalog.ReplaceAll(ctx, []domain.Category{active, inactive}, items, extras)
	require.NoError(t, err)

	// inactive categories are filtered out
	categories, err := suite.catalog.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, active.ID, categories[0].ID)

	// inactive items are filtered out
	got, err := suite.catalog.Items(ctx, "")
	require.NoError(t, err)
	require.Len(t, got, 2)

	expected := items[:2]
	sort.Slice(expected, func(i, j int) bool { return expected[i].ID < expected[j].ID })
	sort.Slice(got, func(i, j int) bool { return got[i].ID < got[j].ID })
	for i, item := range got {
		assertMenuItem(t, expected[i], item)
	}

	// category filter narrows the list
	got, err = suite.catalog.Items(ctx, inactive.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	// inactive extras are filtered out
	gotExtras, err := suite.catalog.Extras(ctx)
	require.NoError(t, err)
	require.Len(t, gotExtras, 1)
	assert.Equal(t, extras[0].ID, gotExtras[0].ID)
}

func (suite *catalogRepositorySuite) TestUpsertItem() {
	t := suite.T()
	ctx := t.Context()

	category := randomCategory(true)
	item := randomMenuItem(category.ID, true)

	err := suite.catalog.ReplaceAll(ctx, []domain.Category{category}, nil, nil)
	require.NoError(t, err)

	require.NoError(t, suite.catalog.UpsertItem(ctx, item))

	// second upsert updates in place
	item.Name = gofakeit.NounConcrete()
	item.BeefPrice.Amount = decimal.NewFromInt(int64(gofakeit.Number(1, 100)))
	require.NoError(t, suite.catalog.UpsertItem(ctx, item))

	got, err := suite.catalog.Items(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assertMenuItem(t, item, got[0])
}

func (suite *catalogRepositorySuite) TestUpsertItemEmptyID() {
	err := suite.catalog.UpsertItem(suite.T().Context(), domain.MenuItem{})
	suite.EqualError(err, "item ID is empty")
}

func (suite *catalogRepositorySuite) TestDeleteItem() {
	t := suite.T()
	ctx := t.Context()

	category := randomCategory(true)
	item := randomMenuItem(category.ID, true)

	err := suite.catalog.ReplaceAll(ctx, []domain.Category{category}, []domain.MenuItem{item}, nil)
	require.NoError(t, err)

	deleted, err := suite.catalog.DeleteItem(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.catalog.DeleteItem(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func randomCategory(active bool) domain.Category {
	return domain.Category{
		ID:       gofakeit.UUID(),
		Name:     gofakeit.NounConcrete(),
		Icon:     "🍔",
		IsActive: active,
	}
}

func randomMenuItem(categoryID string, active bool) domain.MenuItem {
	unit := currency.MustParseISO("EGP")

	return domain.MenuItem{
		ID:           gofakeit.UUID(),
		Name:         gofakeit.NounConcrete(),
		Description:  gofakeit.SentenceSimple(),
		BeefPrice:    domain.MoneyFromInt(int64(gofakeit.Number(20, 100)), unit),
		ChickenPrice: domain.MoneyFromInt(int64(gofakeit.Number(20, 100)), unit),
		CategoryID:   categoryID,
		IsPopular:    gofakeit.Bool(),
		IsActive:     active,
		Image:        gofakeit.URL(),
	}
}

func randomExtra(active bool) domain.Extra {
	return domain.Extra{
		ID:       gofakeit.UUID(),
		Name:     gofakeit.NounConcrete(),
		Price:    domain.MoneyFromInt(int64(gofakeit.Number(5, 20)), currency.MustParseISO("EGP")),
		IsActive: active,
	}
}

func assertMenuItem(t *testing.T, expected, actual domain.MenuItem) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})
	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	diff := cmp.Diff(expected, actual, currencyComparer, decimalComparer)
	assert.Empty(t, diff)
}
