package impl

import (
	"context"
	"log/slog"
	"strings"
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

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	userRepo      repository.UserRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// NewComplaintService creates a new complaint service instance.
func NewComplaintService(
	complaintRepo repository.ComplaintRepository,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ComplaintUsecase {
	return &complaintService{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// SubmitComplaint files a complaint for the given party. The message must be
// non-empty after trimming whitespace; the stored message keeps the trimmed
// form.
func (s *complaintService) SubmitComplaint(ctx context.Context, input *usecase.SubmitComplaintInput) (*entity.Complaint, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrEmptyMessage
	}

	party, err := s.userRepo.FindByID(ctx, input.PartyID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find filing party")
	}

	complaint := &entity.Complaint{
		ID:        uuid.New(),
		PartyID:   party.ID,
		PartyName: party.FullName,
		Category:  input.Category,
		Message:   message,
		Status:    entity.ComplaintStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to create complaint")
	}

	return complaint, nil
}

// ListComplaints returns every complaint, newest first.
func (s *complaintService) ListComplaints(ctx context.Context) ([]*entity.Complaint, error) {
	complaints, err := s.complaintRepo.ListAll(ctx)

	return complaints, errors.Wrap(err, "failed to list complaints")
}

// ResolveComplaint applies pending->resolved, recording the resolution time.
func (s *complaintService) ResolveComplaint(ctx context.Context, complaintID uuid.UUID) (*entity.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint")
	}

	if !complaint.Status.CanTransitionTo(entity.ComplaintStatusResolved) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"complaint cannot move from " + complaint.Status.String() + " to " + entity.ComplaintStatusResolved.String())
	}

	now := time.Now()
	complaint.Status = entity.ComplaintStatusResolved
	complaint.ResolvedAt = now

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to update complaint")
	}

	s.publish(ctx, &service.MarketplaceEvent{
		Type:        constants.EventComplaintResolved,
		OccurredAt:  now,
		ComplaintID: complaint.ID.String(),
		Status:      complaint.Status.String(),
	})

	return complaint, nil
}

// publish sends an event best-effort; failures are logged, never surfaced.
// The request ID stored by the delivery middleware rides along for tracing.
func (s *complaintService) publish(ctx context.Context, event *service.MarketplaceEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishMarketplaceEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish marketplace event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}

// DeleteComplaint removes a complaint permanently.
func (s *complaintService) DeleteComplaint(ctx context.Context, complaintID uuid.UUID) error {
	if err := s.complaintRepo.Delete(ctx, complaintID); err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return domainerrors.ErrComplaintNotFound
		}

		return errors.Wrap(err, "failed to delete complaint")
	}

	return nil
}
