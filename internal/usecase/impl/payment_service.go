package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	receiptSvc  service.ReceiptService
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewPaymentService creates a new payment service instance.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	receiptSvc service.ReceiptService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: paymentRepo,
		receiptSvc:  receiptSvc,
		publisher:   publisher,
		logger:      logger,
	}
}

// ListPayments returns all payments in the given status, newest first.
func (s *paymentService) ListPayments(ctx context.Context, status entity.PaymentStatus) ([]*entity.Payment, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment status: " + status.String())
	}

	payments, err := s.paymentRepo.ListByStatus(ctx, status)

	return payments, errors.Wrap(err, "failed to list payments by status")
}

// TransitionPayment settles or rejects a pending payment. The linked order is
// deliberately left untouched; order approval and settlement are independent
// state machines.
func (s *paymentService) TransitionPayment(ctx context.Context, paymentID uuid.UUID, target entity.PaymentStatus) (*entity.Payment, error) {
	if target != entity.PaymentStatusSettled && target != entity.PaymentStatusRejected {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment transition target must be settled or rejected")
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	if !payment.Status.CanTransitionTo(target) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"payment cannot move from " + payment.Status.String() + " to " + target.String())
	}

	now := time.Now()
	payment.Status = target
	payment.UpdatedAt = now

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to update payment")
	}

	s.publish(ctx, &service.MarketplaceEvent{
		Type:       constants.EventPaymentTransitioned,
		OccurredAt: now,
		OrderID:    payment.OrderID.String(),
		PaymentID:  payment.ID.String(),
		VendorName: payment.VendorName,
		Amount:     payment.Amount.String(),
		Status:     payment.Status.String(),
	})

	return payment, nil
}

// PaymentReceipt renders a scannable QR receipt for the payment.
func (s *paymentService) PaymentReceipt(ctx context.Context, paymentID uuid.UUID) ([]byte, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	png, err := s.receiptSvc.GeneratePaymentQR(payment.ID, payment.OrderID, payment.Amount.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment receipt")
	}

	return png, nil
}

// VerifyReceipt resolves a scanned receipt payload back to its payment so a
// supplier can confirm a settlement at the stall.
func (s *paymentService) VerifyReceipt(ctx context.Context, qrData string) (*entity.Payment, error) {
	paymentID, err := s.receiptSvc.ParsePaymentQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable receipt payload")
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

// publish sends an event best-effort; failures are logged, never surfaced.
// The request ID stored by the delivery middleware rides along for tracing.
func (s *paymentService) publish(ctx context.Context, event *service.MarketplaceEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishMarketplaceEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish marketplace event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
