package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResourceNotFound is returned when a catalog resource is not found.
var ErrResourceNotFound = errors.New("resource not found")

// ResourceRepository defines the operations for catalog persistence.
type ResourceRepository interface {
	// FindByID retrieves a single resource by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error)

	// ListAll returns every resource ordered by name, ascending.
	ListAll(ctx context.Context) ([]*entity.Resource, error)

	// Create persists a new resource.
	Create(ctx context.Context, resource *entity.Resource) error
}
