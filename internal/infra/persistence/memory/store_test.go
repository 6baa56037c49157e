package memory

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email, phone string) *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		FullName:  "Test User",
		Email:     email,
		Phone:     phone,
		Password:  "secret",
		Role:      entity.RoleStreetVendor,
		CreatedAt: time.Now(),
	}
}

func TestUserRepository_Create_RejectsDuplicateEmailAndPhone(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	require.NoError(t, repo.Create(ctx, newTestUser("v@x.com", "1234567890")))

	var appErr domainerrors.AppError

	err := repo.Create(ctx, newTestUser("v@x.com", "0000000000"))
	require.Error(t, err)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_IDENTITY", appErr.ErrorCode())

	err = repo.Create(ctx, newTestUser("other@x.com", "1234567890"))
	require.Error(t, err)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_IDENTITY", appErr.ErrorCode())
}

func TestUserRepository_FindByIdentifier(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	user := newTestUser("v@x.com", "1234567890")
	require.NoError(t, repo.Create(ctx, user))

	byEmail, err := repo.FindByIdentifier(ctx, "v@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byPhone, err := repo.FindByIdentifier(ctx, "1234567890")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byPhone.ID)

	_, err = repo.FindByIdentifier(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestResourceRepository_ListAll_SortsByName(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepository(NewStore())

	for _, name := range []string{"Napkins", "Cooking Oil", "Paper Plates"} {
		require.NoError(t, repo.Create(ctx, &entity.Resource{
			ID:        uuid.New(),
			Name:      name,
			Price:     decimal.NewFromInt(10),
			Category:  entity.CategorySupplies,
			CreatedAt: time.Now(),
		}))
	}

	resources, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 3)
	assert.Equal(t, "Cooking Oil", resources[0].Name)
	assert.Equal(t, "Napkins", resources[1].Name)
	assert.Equal(t, "Paper Plates", resources[2].Name)
}

func TestOrderRepository_List_NewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewOrderRepository(store)
	vendorID := uuid.New()

	base := time.Now()
	for i := range 3 {
		require.NoError(t, repo.Create(ctx, &entity.Order{
			ID:          uuid.New(),
			VendorID:    vendorID,
			VendorName:  "Vendor",
			Items:       []entity.OrderItem{{ResourceID: uuid.New(), Name: "Oil", Price: decimal.NewFromInt(120)}},
			TotalAmount: decimal.NewFromInt(120),
			Status:      entity.OrderStatusPending,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	byStatus, err := repo.ListByStatus(ctx, entity.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, byStatus, 3)
	assert.True(t, byStatus[0].CreatedAt.After(byStatus[1].CreatedAt))
	assert.True(t, byStatus[1].CreatedAt.After(byStatus[2].CreatedAt))

	byVendor, err := repo.ListByVendor(ctx, vendorID)
	require.NoError(t, err)
	assert.Len(t, byVendor, 3)

	none, err := repo.ListByVendor(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(NewStore())

	order := &entity.Order{
		ID:          uuid.New(),
		VendorID:    uuid.New(),
		Items:       []entity.OrderItem{{ResourceID: uuid.New(), Name: "Oil", Price: decimal.NewFromInt(120)}},
		TotalAmount: decimal.NewFromInt(120),
		Status:      entity.OrderStatusPending,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	found.Status = entity.OrderStatusApproved
	found.Items[0].Name = "mutated"

	again, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, again.Status)
	assert.Equal(t, "Oil", again.Items[0].Name)
}

func TestComplaintRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewComplaintRepository(NewStore())

	complaint := &entity.Complaint{
		ID:        uuid.New(),
		PartyID:   uuid.New(),
		PartyName: "Vendor",
		Category:  "Order",
		Message:   "late delivery",
		Status:    entity.ComplaintStatusPending,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, complaint))
	require.NoError(t, repo.Delete(ctx, complaint.ID))

	err := repo.Delete(ctx, complaint.ID)
	assert.ErrorIs(t, err, repository.ErrComplaintNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)

	orderID := uuid.New()
	failure := domainerrors.ErrTransactionFailed.WrapMessage("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orders := factory.NewOrderRepository()
		require.NoError(t, orders.Create(ctx, &entity.Order{
			ID:          orderID,
			VendorID:    uuid.New(),
			TotalAmount: decimal.NewFromInt(10),
			Items:       []entity.OrderItem{{ResourceID: uuid.New(), Name: "Oil", Price: decimal.NewFromInt(10)}},
			Status:      entity.OrderStatusPending,
			CreatedAt:   time.Now(),
		}))

		return failure
	})
	require.Error(t, err)

	_, err = NewOrderRepository(store).FindByID(ctx, orderID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)

	orderID := uuid.New()
	paymentID := uuid.New()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().Create(ctx, &entity.Order{
			ID:          orderID,
			VendorID:    uuid.New(),
			TotalAmount: decimal.NewFromInt(120),
			Items:       []entity.OrderItem{{ResourceID: uuid.New(), Name: "Oil", Price: decimal.NewFromInt(120)}},
			Status:      entity.OrderStatusPending,
			CreatedAt:   time.Now(),
		}); err != nil {
			return err
		}

		return factory.NewPaymentRepository().Create(ctx, &entity.Payment{
			ID:        paymentID,
			OrderID:   orderID,
			Amount:    decimal.NewFromInt(120),
			Status:    entity.PaymentStatusPending,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	})
	require.NoError(t, err)

	payment, err := NewPaymentRepository(store).FindByOrderID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, paymentID, payment.ID)
}

func TestSeed_PopulatesOnceOnly(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	logger := slog.New(slog.DiscardHandler)

	require.NoError(t, Seed(ctx, store, logger))

	resources, err := NewResourceRepository(store).ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, resources, 4)

	// Seeding again must not duplicate anything.
	require.NoError(t, Seed(ctx, store, logger))
	resources, err = NewResourceRepository(store).ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, resources, 4)
}
