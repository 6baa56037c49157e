package entity

import (
	"time"

	"github.com/google/uuid"
)

// Complaint is a grievance filed by any authenticated party. It is the only
// entity in the marketplace that can be hard-deleted.
type Complaint struct {
	ID         uuid.UUID
	PartyID    uuid.UUID // Account that filed the complaint.
	PartyName  string
	Category   string // Free-form category label, e.g. "Order" or "Payment".
	Message    string // Non-empty after trimming whitespace.
	Status     ComplaintStatus
	CreatedAt  time.Time
	ResolvedAt time.Time // Zero until resolved.
}

// ComplaintStatus is the closed set of complaint states.
type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "pending"
	ComplaintStatusResolved ComplaintStatus = "resolved"
)

var complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintStatusPending: {ComplaintStatusResolved},
}

// String returns the string representation of the ComplaintStatus.
func (s ComplaintStatus) String() string {
	return string(s)
}

// IsValid checks if the ComplaintStatus is a valid value.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusResolved:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table allows moving from the
// current status to target.
func (s ComplaintStatus) CanTransitionTo(target ComplaintStatus) bool {
	for _, allowed := range complaintTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}
