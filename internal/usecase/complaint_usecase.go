package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitComplaintInput defines a new complaint. The filer's display name is
// resolved from the account, not trusted from the caller.
type SubmitComplaintInput struct {
	PartyID  uuid.UUID
	Category string
	Message  string
}

// ComplaintUsecase defines the interface for complaint-related business operations.
type ComplaintUsecase interface {
	// SubmitComplaint files a complaint. The message must be non-empty
	// after trimming whitespace.
	SubmitComplaint(ctx context.Context, input *SubmitComplaintInput) (*entity.Complaint, error)

	// ListComplaints returns every complaint, newest first.
	ListComplaints(ctx context.Context) ([]*entity.Complaint, error)

	// ResolveComplaint applies pending->resolved and records when.
	ResolveComplaint(ctx context.Context, complaintID uuid.UUID) (*entity.Complaint, error)

	// DeleteComplaint removes a complaint permanently.
	DeleteComplaint(ctx context.Context, complaintID uuid.UUID) error
}
