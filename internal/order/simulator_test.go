package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/charcoals/storefront/internal/domain"
	"github.com/charcoals/storefront/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func testSnapshot(t *testing.T) domain.CartSnapshot {
	t.Helper()

	unit := currency.MustParseISO("EGP")
	product := domain.MenuItem{
		ID:           "classic",
		Name:         "برجر كلاسيك",
		BeefPrice:    domain.MoneyFromInt(50, unit),
		ChickenPrice: domain.MoneyFromInt(45, unit),
		IsActive:     true,
	}

	item, err := domain.NewLineItem(product, domain.MeatBeef, nil, 2)
	require.NoError(t, err)

	return domain.CartSnapshot{
		Items: []domain.LineItem{item},
		Total: item.LineTotal(),
	}
}

func TestSubmitOrder(t *testing.T) {
	sim := order.NewSimulator(5 * time.Millisecond)

	customer := domain.CustomerInfo{Name: "Ali", Phone: "0123456789", Address: "12 Main St"}
	snapshot := testSnapshot(t)

	got, err := sim.SubmitOrder(t.Context(), customer, snapshot)
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, domain.OrderPending, got.Status)
	assert.Equal(t, customer, got.Customer)
	assert.Len(t, got.Items, 1)
	assert.True(t, got.Total.Amount.Equal(snapshot.Total.Amount))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSubmitOrderEmptySnapshot(t *testing.T) {
	sim := order.NewSimulator(time.Millisecond)

	_, err := sim.SubmitOrder(t.Context(), domain.CustomerInfo{}, domain.CartSnapshot{})
	require.EqualError(t, err, "snapshot has no items")
}

func TestSubmitOrderTimeout(t *testing.T) {
	sim := order.NewSimulator(time.Second)

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Millisecond)
	defer cancel()

	_, err := sim.SubmitOrder(ctx, domain.CustomerInfo{}, testSnapshot(t))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
