package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a vendor's checkout of one or more catalog items. Line items carry
// a price snapshot taken at order time, so later catalog changes never affect
// an existing order. The total always equals the sum of the line item prices.
//
// Every order owns exactly one Payment, created atomically with it.
type Order struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	VendorName  string
	Items       []OrderItem
	TotalAmount decimal.Decimal
	Status      OrderStatus
	ActedBy     string    // Display name of whoever approved or rejected the order.
	ActedAt     time.Time // Zero until the order leaves pending.
	CreatedAt   time.Time
}

// OrderItem is a single ordered line: the resource it came from plus the
// name and price snapshotted at order time.
type OrderItem struct {
	ResourceID uuid.UUID
	Name       string
	Price      decimal.Decimal
}

// OrderStatus is the closed set of order states.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

// orderTransitions is the explicit transition table. Approved and rejected are
// terminal; nothing ever returns to pending.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusApproved, OrderStatusRejected},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table allows moving from the
// current status to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}
