package cart

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/charcoals/storefront/internal/domain"
	"github.com/charcoals/storefront/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Engine holds the session's line items and keeps them durably persisted.
// All mutations run under one mutex, so persistence writes land in mutation
// order and a stale write can never clobber a newer snapshot.
//
// Policy notes:
//   - AddItem rejects quantity < 1 rather than clamping.
//   - Identical product+variant+extras additions always append a new line.
type Engine struct {
	mu sync.Mutex

	store  port.KVStore
	orders port.OrderService

	currency    currency.Unit
	cartKey     string
	customerKey string

	items    []domain.LineItem
	customer domain.CustomerInfo

	// set once a storage write or read fails; the engine then runs
	// in-memory only for the rest of the session
	degraded bool
}

type Options struct {
	Store  port.KVStore
	Orders port.OrderService

	Currency    currency.Unit
	CartKey     string
	CustomerKey string
}

const (
	defaultCartKey     = "charcoals_cart"
	defaultCustomerKey = "charcoals_customer"
)

// New rehydrates the engine from durable storage. A failed or corrupt read
// degrades to an empty in-memory cart instead of failing the session.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if opts.Orders == nil {
		return nil, fmt.Errorf("orders is nil")
	}

	e := &Engine{
		store:       opts.Store,
		orders:      opts.Orders,
		currency:    opts.Currency,
		cartKey:     opts.CartKey,
		customerKey: opts.CustomerKey,
	}
	if e.cartKey == "" {
		e.cartKey = defaultCartKey
	}
	if e.customerKey == "" {
		e.customerKey = defaultCustomerKey
	}

	e.rehydrate(ctx)

	return e, nil
}

func (e *Engine) rehydrate(ctx context.Context) {
	raw, ok, err := e.store.Get(ctx, e.cartKey)
	switch {
	case err != nil:
		e.degrade("read cart", err)
	case ok:
		items, err := decodeSnapshot([]byte(raw))
		if err != nil {
			log.Printf("cart: discarding unreadable snapshot: %v", err)
		} else {
			e.items = items
		}
	}

	raw, ok, err = e.store.Get(ctx, e.customerKey)
	switch {
	case err != nil:
		e.degrade("read customer", err)
	case ok:
		customer, err := decodeCustomer([]byte(raw))
		if err != nil {
			log.Printf("cart: discarding unreadable customer info: %v", err)
		} else {
			e.customer = customer
		}
	}
}

// AddItem appends a new line item and persists the snapshot. The extras'
// prices are copied, so later catalog changes do not alter the line.
func (e *Engine) AddItem(ctx context.Context, product domain.MenuItem, meat domain.MeatType, extras []domain.Extra, quantity int) (domain.LineItem, error) {
	item, err := domain.NewLineItem(product, meat, extras, quantity)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("domain.NewLineItem: %w", err)
	}

	if item.UnitTotal.Currency != e.currency {
		return domain.LineItem{}, fmt.Errorf("currency[%s] does not match cart currency[%s]",
			item.UnitTotal.Currency, e.currency)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = append(e.items, item)
	e.persistCart(ctx)

	return item.Clone(), nil
}

// RemoveItem deletes the matching line. A missing id is a no-op, not an
// error, and does not rewrite the persisted snapshot.
func (e *Engine) RemoveItem(ctx context.Context, lineItemID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.removeLocked(lineItemID) {
		return nil
	}
	e.persistCart(ctx)

	return nil
}

// UpdateQuantity sets the line's quantity in place; a quantity below 1 is
// treated as removal.
func (e *Engine) UpdateQuantity(ctx context.Context, lineItemID string, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity < 1 {
		if e.removeLocked(lineItemID) {
			e.persistCart(ctx)
		}
		return nil
	}

	for i := range e.items {
		if e.items[i].ID == lineItemID {
			e.items[i].Quantity = quantity
			e.persistCart(ctx)
			return nil
		}
	}

	return nil
}

func (e *Engine) removeLocked(lineItemID string) bool {
	for i := range e.items {
		if e.items[i].ID == lineItemID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return true
		}
	}
	return false
}

// ClearCart empties the cart and persists the empty snapshot. Customer info
// is untouched.
func (e *Engine) ClearCart(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = nil
	e.persistCart(ctx)

	return nil
}

// TotalPrice is the sum of unit total times quantity over all lines.
func (e *Engine) TotalPrice() domain.Money {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.totalLocked()
}

func (e *Engine) totalLocked() domain.Money {
	total := decimal.Zero
	for _, item := range e.items {
		total = total.Add(item.LineTotal().Amount)
	}

	return domain.NewMoney(total, e.currency)
}

// Items returns a defensive copy of the current line items.
func (e *Engine) Items() []domain.LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.itemsLocked()
}

func (e *Engine) itemsLocked() []domain.LineItem {
	out := make([]domain.LineItem, 0, len(e.items))
	for _, item := range e.items {
		out = append(out, item.Clone())
	}
	return out
}

func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.items)
}

// Snapshot captures the current items and derived total as one value.
func (e *Engine) Snapshot() domain.CartSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return domain.CartSnapshot{
		Items: e.itemsLocked(),
		Total: e.totalLocked(),
	}
}

func (e *Engine) CustomerInfo() domain.CustomerInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.customer
}

// SetCustomerInfo persists the info under its own key so repeat checkouts
// pre-fill the form.
func (e *Engine) SetCustomerInfo(ctx context.Context, info domain.CustomerInfo) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.customer = info
	e.persistCustomer(ctx)

	return nil
}

// Degraded reports whether durable storage has failed and the engine is
// running in-memory only.
func (e *Engine) Degraded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.degraded
}

// Checkout validates the customer info, submits the current snapshot and,
// only on a successful confirmation, clears the cart. Validation failures
// are returned as domain.ValidationErrors and never reach the collaborator.
func (e *Engine) Checkout(ctx context.Context, info domain.CustomerInfo) (domain.Order, error) {
	if errs := info.Validate(); errs != nil {
		return domain.Order{}, errs
	}

	e.mu.Lock()
	if len(e.items) == 0 {
		e.mu.Unlock()
		return domain.Order{}, fmt.Errorf("cart is empty")
	}
	snapshot := domain.CartSnapshot{
		Items: e.itemsLocked(),
		Total: e.totalLocked(),
	}
	e.mu.Unlock()

	// The collaborator call runs outside the lock; the UI serializes user
	// actions, so the snapshot cannot go stale underneath a single session.
	order, err := e.orders.SubmitOrder(ctx, info, snapshot)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.SubmitOrder: %w", err)
	}

	e.mu.Lock()
	e.items = nil
	e.persistCart(ctx)
	e.mu.Unlock()

	return order, nil
}

// persistCart writes the snapshot under the cart key. Callers hold the
// mutex, which is what keeps successive writes in mutation order. A write
// failure is non-fatal: the engine degrades to in-memory operation.
func (e *Engine) persistCart(ctx context.Context) {
	if e.degraded {
		return
	}

	raw, err := encodeSnapshot(e.items)
	if err != nil {
		e.degrade("encode cart", err)
		return
	}

	if err := e.store.Set(ctx, e.cartKey, string(raw)); err != nil {
		e.degrade("write cart", err)
	}
}

func (e *Engine) persistCustomer(ctx context.Context) {
	if e.degraded {
		return
	}

	raw, err := encodeCustomer(e.customer)
	if err != nil {
		e.degrade("encode customer", err)
		return
	}

	if err := e.store.Set(ctx, e.customerKey, string(raw)); err != nil {
		e.degrade("write customer", err)
	}
}

func (e *Engine) degrade(op string, err error) {
	e.degraded = true
	log.Printf("cart: %s failed, continuing in-memory only: %v", op, err)
}
