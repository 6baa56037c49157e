package memory

import (
	"context"
	"sort"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// resourceRepository implements repository.ResourceRepository against the Store.
type resourceRepository struct {
	store *Store
	read  sync.Locker
	write sync.Locker
}

// NewResourceRepository is the constructor for resourceRepository.
func NewResourceRepository(store *Store) repository.ResourceRepository {
	return &resourceRepository{
		store: store,
		read:  store.mu.RLocker(),
		write: &store.mu,
	}
}

// FindByID retrieves a single resource by its unique ID.
func (repo *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	resource, ok := repo.store.resources[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}

	return cloneResource(resource), nil
}

// ListAll returns every resource ordered by name, ascending.
func (repo *resourceRepository) ListAll(ctx context.Context) ([]*entity.Resource, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	resources := make([]*entity.Resource, 0, len(repo.store.resources))
	for _, resource := range repo.store.resources {
		resources = append(resources, cloneResource(resource))
	}

	sort.Slice(resources, func(i, j int) bool {
		return resources[i].Name < resources[j].Name
	})

	return resources, nil
}

// Create persists a new resource.
func (repo *resourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	repo.write.Lock()
	defer repo.write.Unlock()

	repo.store.resources[resource.ID] = cloneResource(resource)

	return nil
}
