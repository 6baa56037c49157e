package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the operations for payment persistence.
type PaymentRepository interface {
	// FindByID retrieves a single payment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByOrderID retrieves the payment linked to the given order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)

	// ListByStatus returns all payments in the given status, newest first.
	ListByStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Payment, error)

	// Create persists a new payment.
	Create(ctx context.Context, payment *entity.Payment) error

	// Update persists the mutable fields of an existing payment.
	Update(ctx context.Context, payment *entity.Payment) error
}
