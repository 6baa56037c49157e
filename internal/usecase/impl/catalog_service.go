package impl

import (
	"context"
	"strings"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
)

type catalogService struct {
	resourceRepo repository.ResourceRepository
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(resourceRepo repository.ResourceRepository) usecase.CatalogUsecase {
	return &catalogService{
		resourceRepo: resourceRepo,
	}
}

// ListResources returns the full catalog ordered by name, ascending.
func (s *catalogService) ListResources(ctx context.Context) ([]*entity.Resource, error) {
	resources, err := s.resourceRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list resources")
	}

	return resources, nil
}

// AddResource validates and stores a new catalog resource.
func (s *catalogService) AddResource(ctx context.Context, input *usecase.AddResourceInput) (*entity.Resource, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("resource name must not be empty")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("resource description must not be empty")
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("resource price must not be negative")
	}
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + input.Category.String())
	}

	resource := &entity.Resource{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		CreatedAt:   time.Now(),
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, errors.Wrap(err, "failed to create resource")
	}

	return resource, nil
}
