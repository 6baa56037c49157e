package memory

import (
	"context"
	"sort"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// paymentRepository implements repository.PaymentRepository against the Store.
type paymentRepository struct {
	store *Store
	read  sync.Locker
	write sync.Locker
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(store *Store) repository.PaymentRepository {
	return &paymentRepository{
		store: store,
		read:  store.mu.RLocker(),
		write: &store.mu,
	}
}

// newTxPaymentRepository returns a repository for use inside a transaction,
// where the transaction manager already holds the store lock.
func newTxPaymentRepository(store *Store) repository.PaymentRepository {
	return &paymentRepository{
		store: store,
		read:  noopLocker{},
		write: noopLocker{},
	}
}

// FindByID retrieves a single payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	payment, ok := repo.store.payments[id]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}

	return clonePayment(payment), nil
}

// FindByOrderID retrieves the payment linked to the given order.
func (repo *paymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	for _, payment := range repo.store.payments {
		if payment.OrderID == orderID {
			return clonePayment(payment), nil
		}
	}

	return nil, repository.ErrPaymentNotFound
}

// ListByStatus returns all payments in the given status, newest first.
func (repo *paymentRepository) ListByStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Payment, error) {
	repo.read.Lock()
	defer repo.read.Unlock()

	payments := make([]*entity.Payment, 0)
	for _, payment := range repo.store.payments {
		if payment.Status == status {
			payments = append(payments, clonePayment(payment))
		}
	}

	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})

	return payments, nil
}

// Create persists a new payment.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	repo.write.Lock()
	defer repo.write.Unlock()

	repo.store.payments[payment.ID] = clonePayment(payment)

	return nil
}

// Update replaces the stored payment.
func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	repo.write.Lock()
	defer repo.write.Unlock()

	if _, ok := repo.store.payments[payment.ID]; !ok {
		return repository.ErrPaymentNotFound
	}

	repo.store.payments[payment.ID] = clonePayment(payment)

	return nil
}
