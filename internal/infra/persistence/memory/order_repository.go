package memory

import (
	"context"
	"sort"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// orderRepository implements repository.OrderRepository against the Store.
type orderRepository struct {
	store *Store
	read  sync.Locker
	write sync.Locker
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{
		store: store,
		read:  store.mu.RLocker(),
		write: &store.mu,
	}
}

// newTxOrderRepository returns a repository for use inside a transaction,
// where the transaction manager already holds the store lock.
func newTxOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{
		store: store,
		read:  noopLocker{},
		write: noopLocker{},
	}
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	order, ok := repo.store.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return cloneOrder(order), nil
}

// ListByStatus returns all orders in the given status, newest first.
func (repo *orderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	return repo.list(func(order *entity.Order) bool {
		return order.Status == status
	})
}

// ListByVendor returns all orders placed by the given vendor, newest first.
func (repo *orderRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(func(order *entity.Order) bool {
		return order.VendorID == vendorID
	})
}

// Create persists a new order with its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	repo.write.Lock()
	defer repo.write.Unlock()

	repo.store.orders[order.ID] = cloneOrder(order)

	return nil
}

// Update replaces the stored order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	repo.write.Lock()
	defer repo.write.Unlock()

	if _, ok := repo.store.orders[order.ID]; !ok {
		return repository.ErrOrderNotFound
	}

	repo.store.orders[order.ID] = cloneOrder(order)

	return nil
}

func (repo *orderRepository) list(match func(*entity.Order) bool) ([]*entity.Order, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	orders := make([]*entity.Order, 0)
	for _, order := range repo.store.orders {
		if match(order) {
			orders = append(orders, cloneOrder(order))
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}
