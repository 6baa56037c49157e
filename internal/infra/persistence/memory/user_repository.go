package memory

import (
	"context"
	"sync"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository against the Store.
type userRepository struct {
	store *Store
	read  sync.Locker
	write sync.Locker
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{
		store: store,
		read:  store.mu.RLocker(),
		write: &store.mu,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	user, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

// FindByIdentifier retrieves a single user whose email or phone equals identifier.
func (repo *userRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	if id, ok := repo.store.emailIndex[identifier]; ok {
		return cloneUser(repo.store.users[id]), nil
	}
	if id, ok := repo.store.phoneIndex[identifier]; ok {
		return cloneUser(repo.store.users[id]), nil
	}

	return nil, repository.ErrUserNotFound
}

// Create persists a new user, enforcing email and phone uniqueness.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	repo.write.Lock()
	defer repo.write.Unlock()

	if _, taken := repo.store.emailIndex[user.Email]; taken {
		return domainerrors.ErrDuplicateIdentity.WrapMessage("email already registered")
	}
	if _, taken := repo.store.phoneIndex[user.Phone]; taken {
		return domainerrors.ErrDuplicateIdentity.WrapMessage("phone already registered")
	}

	repo.store.users[user.ID] = cloneUser(user)
	repo.store.emailIndex[user.Email] = user.ID
	repo.store.phoneIndex[user.Phone] = user.ID

	return nil
}
