package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines a vendor's checkout. Cart items reference catalog
// resources by ID; name and price are snapshotted from the live catalog at
// order time, never trusted from the caller.
type PlaceOrderInput struct {
	VendorID    uuid.UUID
	ResourceIDs []uuid.UUID
}

// ListOrdersInput filters the order listing by exactly one of status or
// vendor.
type ListOrdersInput struct {
	Status   entity.OrderStatus
	VendorID uuid.UUID
}

// TransitionOrderInput moves an order out of pending, recording who acted.
type TransitionOrderInput struct {
	OrderID   uuid.UUID
	Target    entity.OrderStatus
	ActorName string
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// PlaceOrder creates an order and, atomically with it, the linked
	// pending payment carrying the same total.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns matching orders, newest first.
	ListOrders(ctx context.Context, input *ListOrdersInput) ([]*entity.Order, error)

	// TransitionOrder applies pending->approved or pending->rejected. The
	// linked payment is left untouched; the two state machines are
	// deliberately decoupled.
	TransitionOrder(ctx context.Context, input *TransitionOrderInput) (*entity.Order, error)
}
