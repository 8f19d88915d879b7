package order

import (
	"context"
	"fmt"
	"time"

	"github.com/charcoals/storefront/internal/domain"
	"github.com/google/uuid"
)

const defaultDelay = 400 * time.Millisecond

// Simulator stands in for the real order backend: it waits a little, then
// confirms the order. The context can cancel the wait, which is how callers
// model submission timeouts.
type Simulator struct {
	delay time.Duration
}

func NewSimulator(delay time.Duration) *Simulator {
	if delay <= 0 {
		delay = defaultDelay
	}
	return &Simulator{delay: delay}
}

func (s *Simulator) SubmitOrder(ctx context.Context, customer domain.CustomerInfo, snapshot domain.CartSnapshot) (domain.Order, error) {
	if len(snapshot.Items) == 0 {
		return domain.Order{}, fmt.Errorf("snapshot has no items")
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.Order{}, fmt.Errorf("submit cancelled: %w", ctx.Err())
	case <-timer.C:
	}

	return domain.Order{
		ID:        uuid.NewString(),
		Customer:  customer,
		Items:     snapshot.Items,
		Total:     snapshot.Total,
		Status:    domain.OrderPending,
		CreatedAt: time.Now(),
	}, nil
}
