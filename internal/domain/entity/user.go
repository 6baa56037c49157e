// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is an account on the marketplace. A user is identified globally by a
// UUID, but both the email address and the phone number act as secondary
// identities: no two users may share either one, and either may be used to
// log in.
type User struct {
	ID        uuid.UUID // The unique identifier for this account.
	FullName  string    // The user's display name.
	Email     string    // Unique contact email, usable as a login identifier.
	Phone     string    // Unique phone number, usable as a login identifier.
	Password  string    // Stored and compared verbatim; the marketplace never hashes passwords.
	Role      Role      // The single role this account acts under.
	CreatedAt time.Time // Timestamp of when this account was created.
}

// Role represents the type of role a user can have in the marketplace.
type Role string

const (
	// RoleStreetVendor browses the catalog, places orders and files complaints.
	RoleStreetVendor Role = "street_vendor"
	// RoleSupplier approves or rejects incoming orders and settles payments.
	RoleSupplier Role = "retailer_to_vendor"
	// RoleAdmin manages the catalog, oversees payments and handles complaints.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStreetVendor, RoleSupplier, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
