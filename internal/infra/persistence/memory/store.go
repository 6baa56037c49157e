// Package memory contains the in-memory implementation of the persistence
// layer: the Marketplace Store. One Store instance owns the five entity
// collections behind a single RWMutex, so every read sees a consistent
// snapshot and every mutation is serialized.
//
// Repositories copy entities on both write and read. The store never hands
// out a pointer into its own state, which keeps snapshot/restore rollback
// (see transaction.go) a plain map clone.
package memory

import (
	"maps"
	"sync"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Store is the sole owner of all marketplace state.
type Store struct {
	mu sync.RWMutex

	users      map[uuid.UUID]*entity.User
	emailIndex map[string]uuid.UUID
	phoneIndex map[string]uuid.UUID
	resources  map[uuid.UUID]*entity.Resource
	orders     map[uuid.UUID]*entity.Order
	payments   map[uuid.UUID]*entity.Payment
	complaints map[uuid.UUID]*entity.Complaint
}

// NewStore creates an empty marketplace store.
func NewStore() *Store {
	return &Store{
		users:      make(map[uuid.UUID]*entity.User),
		emailIndex: make(map[string]uuid.UUID),
		phoneIndex: make(map[string]uuid.UUID),
		resources:  make(map[uuid.UUID]*entity.Resource),
		orders:     make(map[uuid.UUID]*entity.Order),
		payments:   make(map[uuid.UUID]*entity.Payment),
		complaints: make(map[uuid.UUID]*entity.Complaint),
	}
}

// snapshot captures the collection maps for rollback. Shallow clones are
// sufficient because stored entities are immutable once inserted: repositories
// replace entries with fresh copies instead of mutating in place.
type snapshot struct {
	users      map[uuid.UUID]*entity.User
	emailIndex map[string]uuid.UUID
	phoneIndex map[string]uuid.UUID
	resources  map[uuid.UUID]*entity.Resource
	orders     map[uuid.UUID]*entity.Order
	payments   map[uuid.UUID]*entity.Payment
	complaints map[uuid.UUID]*entity.Complaint
}

// takeSnapshot assumes the caller holds the write lock.
func (s *Store) takeSnapshot() *snapshot {
	return &snapshot{
		users:      maps.Clone(s.users),
		emailIndex: maps.Clone(s.emailIndex),
		phoneIndex: maps.Clone(s.phoneIndex),
		resources:  maps.Clone(s.resources),
		orders:     maps.Clone(s.orders),
		payments:   maps.Clone(s.payments),
		complaints: maps.Clone(s.complaints),
	}
}

// restore assumes the caller holds the write lock.
func (s *Store) restore(snap *snapshot) {
	s.users = snap.users
	s.emailIndex = snap.emailIndex
	s.phoneIndex = snap.phoneIndex
	s.resources = snap.resources
	s.orders = snap.orders
	s.payments = snap.payments
	s.complaints = snap.complaints
}

// noopLocker replaces the store mutex for repositories handed out inside a
// transaction, where the transaction manager already holds the write lock.
type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// --- copy helpers ---

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	cloned := *u

	return &cloned
}

func cloneResource(r *entity.Resource) *entity.Resource {
	if r == nil {
		return nil
	}
	cloned := *r

	return &cloned
}

func cloneOrder(o *entity.Order) *entity.Order {
	if o == nil {
		return nil
	}
	cloned := *o
	cloned.Items = make([]entity.OrderItem, len(o.Items))
	copy(cloned.Items, o.Items)

	return &cloned
}

func clonePayment(p *entity.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	cloned := *p

	return &cloned
}

func cloneComplaint(c *entity.Complaint) *entity.Complaint {
	if c == nil {
		return nil
	}
	cloned := *c

	return &cloned
}
