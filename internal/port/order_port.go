package port

import (
	"context"

	"github.com/charcoals/storefront/internal/domain"
)

// OrderService submits a cart snapshot for fulfilment. It is asynchronous
// from the caller's point of view and may fail; callers attach timeouts via
// the context.
type OrderService interface {
	SubmitOrder(ctx context.Context, customer domain.CustomerInfo, snapshot domain.CartSnapshot) (domain.Order, error)
}
