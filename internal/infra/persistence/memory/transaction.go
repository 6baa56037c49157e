package memory

import (
	"context"

	"bazaar/internal/domain/repository"
)

// transactionManager implements the domain's TransactionManager interface for
// the in-memory store. It takes the store's write lock for the whole
// transaction, snapshots the collections, and restores them if the callback
// fails, giving the same all-or-nothing semantics a database transaction
// would.
type transactionManager struct {
	store *Store
}

// txRepositoryFactory hands out repositories whose lockers are no-ops, since
// the transaction manager already holds the write lock.
type txRepositoryFactory struct {
	store *Store
}

// NewOrderRepository creates an order repository bound to the transaction.
func (f *txRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return newTxOrderRepository(f.store)
}

// NewPaymentRepository creates a payment repository bound to the transaction.
func (f *txRepositoryFactory) NewPaymentRepository() repository.PaymentRepository {
	return newTxPaymentRepository(f.store)
}

// NewTransactionManager is the constructor for transactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs the given function within a single store transaction.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.takeSnapshot()

	// Roll back on panic as well, then let the caller's recovery machinery
	// deal with it.
	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(snap)
			panic(r)
		}
	}()

	factory := &txRepositoryFactory{store: tm.store}

	if err := fn(factory); err != nil {
		tm.store.restore(snap)

		return err
	}

	return nil
}
