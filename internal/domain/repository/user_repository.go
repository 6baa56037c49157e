// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIdentifier retrieves a single user whose email or phone number
	// equals identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)

	// Create persists a new user. Implementations must enforce email and
	// phone uniqueness and return domain.ErrDuplicateIdentity on collision.
	Create(ctx context.Context, user *entity.User) error
}
