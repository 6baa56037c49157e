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

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves a single order with its line items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByStatus returns all orders in the given status, newest first.
func (repo *orderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	return repo.list(ctx, "status = ?", status.String())
}

// ListByVendor returns all orders placed by the given vendor, newest first.
func (repo *orderRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, "vendor_id = ?", vendorID)
}

func (repo *orderRepository) list(ctx context.Context, cond string, arg any) ([]*entity.Order, error) {
	var models []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where(cond, arg).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderDomain(&models[i]))
	}

	return orders, nil
}

// Create persists a new order together with its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt

	return nil
}

// Update persists the mutable fields of an existing order. Line items and
// totals never change after creation, so only the status columns are written.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	updates := map[string]any{
		"status":   order.Status.String(),
		"acted_by": order.ActedBy,
		"acted_at": nullableTime(order.ActedAt),
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.OrderItem{
			ResourceID: item.ResourceID,
			Name:       item.Name,
			Price:      item.Price,
		})
	}

	order := &entity.Order{
		ID:          m.ID,
		VendorID:    m.VendorID,
		VendorName:  m.VendorName,
		Items:       items,
		TotalAmount: m.TotalAmount,
		Status:      entity.OrderStatus(m.Status),
		ActedBy:     m.ActedBy,
		CreatedAt:   m.CreatedAt,
	}
	if m.ActedAt != nil {
		order.ActedAt = *m.ActedAt
	}

	return order
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, model.OrderItemModel{
			OrderID:    o.ID,
			ResourceID: item.ResourceID,
			Name:       item.Name,
			Price:      item.Price,
		})
	}

	return &model.OrderModel{
		ID:          o.ID,
		VendorID:    o.VendorID,
		VendorName:  o.VendorName,
		TotalAmount: o.TotalAmount,
		Status:      o.Status.String(),
		ActedBy:     o.ActedBy,
		ActedAt:     nullableTime(o.ActedAt),
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
}

// nullableTime maps the domain's zero-value sentinel to SQL NULL.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
