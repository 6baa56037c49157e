package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrComplaintNotFound is returned when a complaint is not found.
var ErrComplaintNotFound = errors.New("complaint not found")

// ComplaintRepository defines the operations for complaint persistence.
type ComplaintRepository interface {
	// FindByID retrieves a single complaint by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)

	// ListAll returns every complaint, newest first.
	ListAll(ctx context.Context) ([]*entity.Complaint, error)

	// Create persists a new complaint.
	Create(ctx context.Context, complaint *entity.Complaint) error

	// Update persists the mutable fields of an existing complaint.
	Update(ctx context.Context, complaint *entity.Complaint) error

	// Delete removes a complaint permanently. Complaints are the only
	// entity in the marketplace with a hard delete.
	Delete(ctx context.Context, id uuid.UUID) error
}
