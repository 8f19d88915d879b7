package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is the confirmation returned by the order-submission collaborator.
type Order struct {
	ID        string
	Customer  CustomerInfo
	Items     []LineItem
	Total     Money
	Status    OrderStatus
	CreatedAt time.Time
}
