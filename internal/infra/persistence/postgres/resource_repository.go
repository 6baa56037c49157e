package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resourceRepository implements the domain.ResourceRepository interface using GORM.
type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository is the constructor for resourceRepository.
func NewResourceRepository(db *gorm.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

// FindByID retrieves a single resource by its unique ID.
func (repo *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	var resourceM model.ResourceModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&resourceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find resource by id")
	}

	return toResourceDomain(&resourceM), nil
}

// ListAll returns the full catalog ordered by name, ascending.
func (repo *resourceRepository) ListAll(ctx context.Context) ([]*entity.Resource, error) {
	var models []model.ResourceModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list resources")
	}

	resources := make([]*entity.Resource, 0, len(models))
	for i := range models {
		resources = append(resources, toResourceDomain(&models[i]))
	}

	return resources, nil
}

// Create persists a new resource.
func (repo *resourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	resourceM := fromResourceDomain(resource)

	if err := repo.db.WithContext(ctx).Create(resourceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required resource information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create resource")
	}

	resource.CreatedAt = resourceM.CreatedAt

	return nil
}

func toResourceDomain(m *model.ResourceModel) *entity.Resource {
	return &entity.Resource{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    entity.ResourceCategory(m.Category),
		CreatedAt:   m.CreatedAt,
	}
}

func fromResourceDomain(r *entity.Resource) *model.ResourceModel {
	return &model.ResourceModel{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    string(r.Category),
		CreatedAt:   r.CreatedAt,
	}
}
