package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a
// specific backend, whether that is GORM or the in-memory store.
//
// The order/payment pair is the one place in the marketplace requiring
// all-or-nothing semantics: an order is only committed if its payment is too.
type TransactionManager interface {
	// Execute runs a function within a single transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function share the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside the transaction sees and mutates the
// same state.
type RepositoryFactory interface {
	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewPaymentRepository returns a PaymentRepository bound to the current transaction.
	NewPaymentRepository() PaymentRepository
}
