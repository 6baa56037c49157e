package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// AddResourceInput defines the data required to add a catalog resource.
type AddResourceInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    entity.ResourceCategory
}

// CatalogUsecase defines the interface for catalog-related business operations.
type CatalogUsecase interface {
	// ListResources returns the full catalog ordered by name, ascending.
	ListResources(ctx context.Context) ([]*entity.Resource, error)

	// AddResource validates and stores a new catalog resource.
	AddResource(ctx context.Context, input *AddResourceInput) (*entity.Resource, error)
}
