package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// complaintRepository implements the domain.ComplaintRepository interface using GORM.
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(db *gorm.DB) repository.ComplaintRepository {
	return &complaintRepository{db: db}
}

// FindByID retrieves a single complaint by its unique ID.
func (repo *complaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	var complaintM model.ComplaintModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&complaintM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint by id")
	}

	return toComplaintDomain(&complaintM), nil
}

// ListAll returns every complaint, newest first.
func (repo *complaintRepository) ListAll(ctx context.Context) ([]*entity.Complaint, error) {
	var models []model.ComplaintModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	complaints := make([]*entity.Complaint, 0, len(models))
	for i := range models {
		complaints = append(complaints, toComplaintDomain(&models[i]))
	}

	return complaints, nil
}

// Create persists a new complaint.
func (repo *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	complaintM := fromComplaintDomain(complaint)

	if err := repo.db.WithContext(ctx).Create(complaintM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required complaint information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint")
	}

	complaint.CreatedAt = complaintM.CreatedAt

	return nil
}

// Update persists the mutable fields of an existing complaint.
func (repo *complaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	var resolvedAt *time.Time
	if !complaint.ResolvedAt.IsZero() {
		resolvedAt = &complaint.ResolvedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ComplaintModel{}).
		Where("id = ?", complaint.ID).
		Updates(map[string]any{
			"status":      complaint.Status.String(),
			"resolved_at": resolvedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update complaint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	return nil
}

// Delete removes a complaint permanently.
func (repo *complaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ComplaintModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete complaint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	return nil
}

func toComplaintDomain(m *model.ComplaintModel) *entity.Complaint {
	complaint := &entity.Complaint{
		ID:        m.ID,
		PartyID:   m.PartyID,
		PartyName: m.PartyName,
		Category:  m.Category,
		Message:   m.Message,
		Status:    entity.ComplaintStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
	if m.ResolvedAt != nil {
		complaint.ResolvedAt = *m.ResolvedAt
	}

	return complaint
}

func fromComplaintDomain(c *entity.Complaint) *model.ComplaintModel {
	complaintM := &model.ComplaintModel{
		ID:        c.ID,
		PartyID:   c.PartyID,
		PartyName: c.PartyName,
		Category:  c.Category,
		Message:   c.Message,
		Status:    c.Status.String(),
		CreatedAt: c.CreatedAt,
	}
	if !c.ResolvedAt.IsZero() {
		resolvedAt := c.ResolvedAt
		complaintM.ResolvedAt = &resolvedAt
	}

	return complaintM
}
