package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is the settlement record for exactly one Order. It is created
// together with its order, with the same amount, and then evolves as an
// independent state machine: approving an order does not settle its payment
// and settling a payment does not approve its order. The two share only the
// order identifier.
type Payment struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	VendorName   string
	SupplierName string
	Amount       decimal.Decimal
	Status       PaymentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PaymentStatus is the closed set of payment states.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSettled  PaymentStatus = "settled"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// paymentTransitions mirrors the order table: one-way, from pending only.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusSettled, PaymentStatusRejected},
}

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSettled, PaymentStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table allows moving from the
// current status to target.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}
