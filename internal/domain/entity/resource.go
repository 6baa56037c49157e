package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Resource is a catalog item offered to vendors: ingredients, packaging and
// the like. Resources are created by admins and are immutable afterwards;
// orders snapshot the price at order time rather than referencing the live
// catalog entry.
type Resource struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal // Non-negative, currency-agnostic.
	Category    ResourceCategory
	CreatedAt   time.Time
}

// ResourceCategory is the closed set of catalog categories.
type ResourceCategory string

const (
	CategoryIngredients ResourceCategory = "ingredients"
	CategoryPackaging   ResourceCategory = "packaging"
	CategoryEquipment   ResourceCategory = "equipment"
	CategorySupplies    ResourceCategory = "supplies"
)

// String returns the string representation of the ResourceCategory.
func (c ResourceCategory) String() string {
	return string(c)
}

// IsValid checks if the ResourceCategory is a valid value.
func (c ResourceCategory) IsValid() bool {
	switch c {
	case CategoryIngredients, CategoryPackaging, CategoryEquipment, CategorySupplies:
		return true
	default:
		return false
	}
}
