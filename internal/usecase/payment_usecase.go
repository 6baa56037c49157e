package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentUsecase defines the interface for payment-related business operations.
type PaymentUsecase interface {
	// ListPayments returns all payments in the given status, newest first.
	ListPayments(ctx context.Context, status entity.PaymentStatus) ([]*entity.Payment, error)

	// TransitionPayment applies pending->settled or pending->rejected.
	TransitionPayment(ctx context.Context, paymentID uuid.UUID, target entity.PaymentStatus) (*entity.Payment, error)

	// PaymentReceipt renders a scannable QR receipt for the payment.
	PaymentReceipt(ctx context.Context, paymentID uuid.UUID) ([]byte, error)

	// VerifyReceipt resolves a scanned receipt payload back to its payment.
	VerifyReceipt(ctx context.Context, qrData string) (*entity.Payment, error)
}
