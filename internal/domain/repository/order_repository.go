package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
// List results are ordered by creation time, newest first.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByStatus returns all orders in the given status.
	ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)

	// ListByVendor returns all orders placed by the given vendor.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error)

	// Create persists a new order with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// Update persists the mutable fields of an existing order (status,
	// actor, acted-at). Line items and totals are immutable after creation.
	Update(ctx context.Context, order *entity.Order) error
}
