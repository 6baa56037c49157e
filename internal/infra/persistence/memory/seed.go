package memory

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Seed loads the demo dataset: one account per role, a starter catalog, and a
// sample order with its payment and a complaint, so a fresh instance has
// something to show. It is a no-op when the store already holds users.
func Seed(ctx context.Context, store *Store, logger *slog.Logger) error {
	store.mu.RLock()
	populated := len(store.users) > 0
	store.mu.RUnlock()
	if populated {
		return nil
	}

	now := time.Now()

	users := NewUserRepository(store)
	admin := &entity.User{
		ID:        uuid.New(),
		FullName:  "System Admin",
		Email:     "admin@bazaar.dev",
		Phone:     "9999999999",
		Password:  "admin123",
		Role:      entity.RoleAdmin,
		CreatedAt: now,
	}
	vendor := &entity.User{
		ID:        uuid.New(),
		FullName:  "Demo Vendor",
		Email:     "vendor@bazaar.dev",
		Phone:     "8888888888",
		Password:  "vendor123",
		Role:      entity.RoleStreetVendor,
		CreatedAt: now,
	}
	supplier := &entity.User{
		ID:        uuid.New(),
		FullName:  "Demo Supplier",
		Email:     "supplier@bazaar.dev",
		Phone:     "7777777777",
		Password:  "supplier123",
		Role:      entity.RoleSupplier,
		CreatedAt: now,
	}
	for _, user := range []*entity.User{admin, vendor, supplier} {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
	}

	resources := NewResourceRepository(store)
	vegetables := &entity.Resource{
		ID:          uuid.New(),
		Name:        "Fresh Vegetables",
		Description: "Daily fresh vegetables for street food preparation",
		Price:       decimal.NewFromInt(150),
		Category:    entity.CategoryIngredients,
		CreatedAt:   now,
	}
	oil := &entity.Resource{
		ID:          uuid.New(),
		Name:        "Cooking Oil",
		Description: "High quality cooking oil for frying",
		Price:       decimal.NewFromInt(120),
		Category:    entity.CategoryIngredients,
		CreatedAt:   now,
	}
	plates := &entity.Resource{
		ID:          uuid.New(),
		Name:        "Paper Plates",
		Description: "Eco-friendly disposable plates",
		Price:       decimal.NewFromInt(80),
		Category:    entity.CategoryPackaging,
		CreatedAt:   now,
	}
	napkins := &entity.Resource{
		ID:          uuid.New(),
		Name:        "Napkins",
		Description: "Quality paper napkins for customers",
		Price:       decimal.NewFromInt(50),
		Category:    entity.CategoryPackaging,
		CreatedAt:   now,
	}
	for _, resource := range []*entity.Resource{vegetables, oil, plates, napkins} {
		if err := resources.Create(ctx, resource); err != nil {
			return err
		}
	}

	// One pending order with its payment, exactly as placing it would create.
	order := &entity.Order{
		ID:         uuid.New(),
		VendorID:   vendor.ID,
		VendorName: vendor.FullName,
		Items: []entity.OrderItem{
			{ResourceID: vegetables.ID, Name: vegetables.Name, Price: vegetables.Price},
			{ResourceID: plates.ID, Name: plates.Name, Price: plates.Price},
		},
		TotalAmount: vegetables.Price.Add(plates.Price),
		Status:      entity.OrderStatusPending,
		CreatedAt:   now,
	}
	if err := NewOrderRepository(store).Create(ctx, order); err != nil {
		return err
	}
	payment := &entity.Payment{
		ID:           uuid.New(),
		OrderID:      order.ID,
		VendorName:   vendor.FullName,
		SupplierName: supplier.FullName,
		Amount:       order.TotalAmount,
		Status:       entity.PaymentStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := NewPaymentRepository(store).Create(ctx, payment); err != nil {
		return err
	}

	complaint := &entity.Complaint{
		ID:        uuid.New(),
		PartyID:   vendor.ID,
		PartyName: vendor.FullName,
		Category:  "Order",
		Message:   "Order delivery was delayed by 2 days",
		Status:    entity.ComplaintStatusPending,
		CreatedAt: now,
	}
	if err := NewComplaintRepository(store).Create(ctx, complaint); err != nil {
		return err
	}

	logger.Info("Seeded demo marketplace data",
		slog.Int("users", 3),
		slog.Int("resources", 4),
	)

	return nil
}
