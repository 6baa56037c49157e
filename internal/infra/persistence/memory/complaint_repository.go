package memory

import (
	"context"
	"sort"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// complaintRepository implements repository.ComplaintRepository against the Store.
type complaintRepository struct {
	store *Store
	read  sync.Locker
	write sync.Locker
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(store *Store) repository.ComplaintRepository {
	return &complaintRepository{
		store: store,
		read:  store.mu.RLocker(),
		write: &store.mu,
	}
}

// FindByID retrieves a single complaint by its unique ID.
func (repo *complaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	complaint, ok := repo.store.complaints[id]
	if !ok {
		return nil, repository.ErrComplaintNotFound
	}

	return cloneComplaint(complaint), nil
}

// ListAll returns every complaint, newest first.
func (repo *complaintRepository) ListAll(ctx context.Context) ([]*entity.Complaint, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	complaints := make([]*entity.Complaint, 0, len(repo.store.complaints))
	for _, complaint := range repo.store.complaints {
		complaints = append(complaints, cloneComplaint(complaint))
	}

	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].CreatedAt.After(complaints[j].CreatedAt)
	})

	return complaints, nil
}

// Create persists a new complaint.
func (repo *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	repo.write.Lock()
	defer repo.write.Unlock()

	repo.store.complaints[complaint.ID] = cloneComplaint(complaint)

	return nil
}

// Update replaces the stored complaint.
func (repo *complaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	repo.write.Lock()
	defer repo.write.Unlock()

	if _, ok := repo.store.complaints[complaint.ID]; !ok {
		return repository.ErrComplaintNotFound
	}

	repo.store.complaints[complaint.ID] = cloneComplaint(complaint)

	return nil
}

// Delete removes a complaint permanently.
func (repo *complaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	repo.write.Lock()
	defer repo.write.Unlock()

	if _, ok := repo.store.complaints[id]; !ok {
		return repository.ErrComplaintNotFound
	}

	delete(repo.store.complaints, id)

	return nil
}
