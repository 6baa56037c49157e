package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultSupplierName is recorded on payments created before a supplier has
// picked up the order.
const defaultSupplierName = "System Supplier"

type orderService struct {
	userRepo     repository.UserRepository
	resourceRepo repository.ResourceRepository
	orderRepo    repository.OrderRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewOrderService creates a new order service instance.
func NewOrderService(
	userRepo repository.UserRepository,
	resourceRepo repository.ResourceRepository,
	orderRepo repository.OrderRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		userRepo:     userRepo,
		resourceRepo: resourceRepo,
		orderRepo:    orderRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

// PlaceOrder checks out a vendor's cart. Line items snapshot the current
// catalog name and price, the total is the sum of those snapshots, and the
// linked payment is created in the same transaction: either both records
// commit or neither does.
func (s *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.ResourceIDs) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	vendor, err := s.userRepo.FindByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	items := make([]entity.OrderItem, 0, len(input.ResourceIDs))
	total := decimal.Zero
	for _, resourceID := range input.ResourceIDs {
		resource, err := s.resourceRepo.FindByID(ctx, resourceID)
		if err != nil {
			if errors.Is(err, repository.ErrResourceNotFound) {
				return nil, domainerrors.ErrResourceNotFound.WithDetails("unknown resource: " + resourceID.String())
			}

			return nil, errors.Wrap(err, "failed to find resource")
		}

		items = append(items, entity.OrderItem{
			ResourceID: resource.ID,
			Name:       resource.Name,
			Price:      resource.Price,
		})
		total = total.Add(resource.Price)
	}

	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New(),
		VendorID:    vendor.ID,
		VendorName:  vendor.FullName,
		Items:       items,
		TotalAmount: total,
		Status:      entity.OrderStatusPending,
		CreatedAt:   now,
	}
	payment := &entity.Payment{
		ID:           uuid.New(),
		OrderID:      order.ID,
		VendorName:   vendor.FullName,
		SupplierName: defaultSupplierName,
		Amount:       total,
		Status:       entity.PaymentStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return errors.Wrap(factory.NewPaymentRepository().Create(ctx, payment), "failed to create payment")
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &service.MarketplaceEvent{
		Type:       constants.EventOrderPlaced,
		OccurredAt: now,
		OrderID:    order.ID.String(),
		PaymentID:  payment.ID.String(),
		VendorName: order.VendorName,
		Amount:     order.TotalAmount.String(),
		Status:     order.Status.String(),
	})

	return order, nil
}

// ListOrders returns matching orders, newest first. The filter is exactly one
// of a status or a vendor.
func (s *orderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	if input.Status != "" && input.VendorID != uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("the status and vendor filters are mutually exclusive")
	}

	switch {
	case input.Status != "":
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + input.Status.String())
		}

		orders, err := s.orderRepo.ListByStatus(ctx, input.Status)

		return orders, errors.Wrap(err, "failed to list orders by status")
	case input.VendorID != uuid.Nil:
		orders, err := s.orderRepo.ListByVendor(ctx, input.VendorID)

		return orders, errors.Wrap(err, "failed to list orders by vendor")
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("either a status or a vendor filter is required")
	}
}

// TransitionOrder moves an order out of pending, recording who acted and
// when. The linked payment is deliberately left untouched.
func (s *orderService) TransitionOrder(ctx context.Context, input *usecase.TransitionOrderInput) (*entity.Order, error) {
	if input.Target != entity.OrderStatusApproved && input.Target != entity.OrderStatusRejected {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order transition target must be approved or rejected")
	}

	order, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !order.Status.CanTransitionTo(input.Target) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"order cannot move from " + order.Status.String() + " to " + input.Target.String())
	}

	now := time.Now()
	order.Status = input.Target
	order.ActedBy = input.ActorName
	order.ActedAt = now

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	s.publish(ctx, &service.MarketplaceEvent{
		Type:       constants.EventOrderTransitioned,
		OccurredAt: now,
		OrderID:    order.ID.String(),
		VendorName: order.VendorName,
		Status:     order.Status.String(),
	})

	return order, nil
}

// publish sends an event best-effort; failures are logged, never surfaced.
// The request ID stored by the delivery middleware rides along for tracing.
func (s *orderService) publish(ctx context.Context, event *service.MarketplaceEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishMarketplaceEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish marketplace event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
