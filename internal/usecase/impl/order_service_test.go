package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vendor := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)
	oil := f.addResource(t, "Cooking Oil", "120")
	plates := f.addResource(t, "Paper Plates", "80")

	order, err := f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		VendorID:    vendor.ID,
		ResourceIDs: []uuid.UUID{oil.ID, plates.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "Asha Rao", order.VendorName)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Cooking Oil", order.Items[0].Name)
	assert.True(t, order.Items[0].Price.Equal(decimal.NewFromInt(120)))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(200)))

	// The linked payment is created with the same total, pending, and the
	// placeholder supplier name.
	payment, err := f.paymentRepo.FindByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.True(t, payment.Amount.Equal(order.TotalAmount))
	assert.Equal(t, "Asha Rao", payment.VendorName)
	assert.Equal(t, "System Supplier", payment.SupplierName)

	// The placement event was published.
	require.NotEmpty(t, f.publisher.events)
	assert.Equal(t, constants.EventOrderPlaced, f.publisher.events[len(f.publisher.events)-1].Type)
}

func TestOrderService_PlaceOrder_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vendor := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)

	t.Run("empty cart", func(t *testing.T) {
		_, err := f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
			VendorID:    vendor.ID,
			ResourceIDs: nil,
		})
		requireAppError(t, err, "EMPTY_CART")
	})

	t.Run("unknown vendor", func(t *testing.T) {
		oil := f.addResource(t, "Cooking Oil", "120")
		_, err := f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
			VendorID:    uuid.New(),
			ResourceIDs: []uuid.UUID{oil.ID},
		})
		requireAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("unknown resource leaves no partial state", func(t *testing.T) {
		_, err := f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
			VendorID:    vendor.ID,
			ResourceIDs: []uuid.UUID{uuid.New()},
		})
		requireAppError(t, err, "RESOURCE_NOT_FOUND")

		orders, err := f.orders.ListOrders(ctx, &usecase.ListOrdersInput{VendorID: vendor.ID})
		require.NoError(t, err)
		assert.Empty(t, orders)

		payments, err := f.payments.ListPayments(ctx, entity.PaymentStatusPending)
		require.NoError(t, err)
		assert.Empty(t, payments)
	})
}

func TestOrderService_PriceSnapshotIsImmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vendor := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)
	oil := f.addResource(t, "Cooking Oil", "120")

	order, err := f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		VendorID:    vendor.ID,
		ResourceIDs: []uuid.UUID{oil.ID},
	})
	require.NoError(t, err)

	// Mutating the returned catalog entity must not leak into the stored order.
	oil.Price = decimal.NewFromInt(999)

	listed, err := f.orders.ListOrders(ctx, &usecase.ListOrdersInput{VendorID: vendor.ID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Items[0].Price.Equal(decimal.NewFromInt(120)))
	assert.True(t, listed[0].TotalAmount.Equal(order.TotalAmount))
}

func TestOrderService_ListOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vendor := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)
	supplier := f.registerUser(t, "Vikram Shah", "vikram@example.com", "5553334444", entity.RoleSupplier)
	oil := f.addResource(t, "Cooking Oil", "120")

	var placed []*entity.Order
	for range 3 {
		order, err := f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
			VendorID:    vendor.ID,
			ResourceIDs: []uuid.UUID{oil.ID},
		})
		require.NoError(t, err)
		placed = append(placed, order)
		time.Sleep(time.Millisecond)
	}

	_, err := f.orders.TransitionOrder(ctx, &usecase.TransitionOrderInput{
		OrderID:   placed[0].ID,
		Target:    entity.OrderStatusApproved,
		ActorName: supplier.FullName,
	})
	require.NoError(t, err)

	t.Run("by status newest first", func(t *testing.T) {
		pending, err := f.orders.ListOrders(ctx, &usecase.ListOrdersInput{Status: entity.OrderStatusPending})
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, placed[2].ID, pending[0].ID)
		assert.Equal(t, placed[1].ID, pending[1].ID)

		approved, err := f.orders.ListOrders(ctx, &usecase.ListOrdersInput{Status: entity.OrderStatusApproved})
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.Equal(t, placed[0].ID, approved[0].ID)
	})

	t.Run("by vendor", func(t *testing.T) {
		mine, err := f.orders.ListOrders(ctx, &usecase.ListOrdersInput{VendorID: vendor.ID})
		require.NoError(t, err)
		assert.Len(t, mine, 3)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := f.orders.ListOrders(ctx, &usecase.ListOrdersInput{Status: entity.OrderStatus("shipped")})
		requireAppError(t, err, "VALIDATION_FAILED")
	})

	t.Run("missing filter rejected", func(t *testing.T) {
		_, err := f.orders.ListOrders(ctx, &usecase.ListOrdersInput{})
		requireAppError(t, err, "VALIDATION_FAILED")
	})

	t.Run("both filters rejected", func(t *testing.T) {
		// Supplying both must not quietly pick one and leak other
		// vendors' orders into the result.
		other := f.registerUser(t, "Meena Joshi", "meena@example.com", "5557778888", entity.RoleStreetVendor)
		_, err := f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
			VendorID:    other.ID,
			ResourceIDs: []uuid.UUID{oil.ID},
		})
		require.NoError(t, err)

		_, err = f.orders.ListOrders(ctx, &usecase.ListOrdersInput{
			Status:   entity.OrderStatusPending,
			VendorID: vendor.ID,
		})
		requireAppError(t, err, "VALIDATION_FAILED")
	})
}

func TestOrderService_EventsCarryRequestID(t *testing.T) {
	f := newFixture(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	vendor := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)
	oil := f.addResource(t, "Cooking Oil", "120")

	order, err := f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		VendorID:    vendor.ID,
		ResourceIDs: []uuid.UUID{oil.ID},
	})
	require.NoError(t, err)
	require.NotEmpty(t, f.publisher.events)
	assert.Equal(t, "req-42", f.publisher.events[len(f.publisher.events)-1].RequestID)

	payment, err := f.paymentRepo.FindByOrderID(ctx, order.ID)
	require.NoError(t, err)
	_, err = f.payments.TransitionPayment(ctx, payment.ID, entity.PaymentStatusSettled)
	require.NoError(t, err)
	assert.Equal(t, "req-42", f.publisher.events[len(f.publisher.events)-1].RequestID)

	// Without the middleware-set ID the field stays empty.
	_, err = f.orders.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		VendorID:    vendor.ID,
		ResourceIDs: []uuid.UUID{oil.ID},
	})
	require.NoError(t, err)
	assert.Empty(t, f.publisher.events[len(f.publisher.events)-1].RequestID)
}

func TestOrderService_TransitionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vendor := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)
	oil := f.addResource(t, "Cooking Oil", "120")

	order, err := f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		VendorID:    vendor.ID,
		ResourceIDs: []uuid.UUID{oil.ID},
	})
	require.NoError(t, err)

	approved, err := f.orders.TransitionOrder(ctx, &usecase.TransitionOrderInput{
		OrderID:   order.ID,
		Target:    entity.OrderStatusApproved,
		ActorName: "Vikram Shah",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, approved.Status)
	assert.Equal(t, "Vikram Shah", approved.ActedBy)
	assert.False(t, approved.ActedAt.IsZero())

	t.Run("approved is terminal", func(t *testing.T) {
		_, err := f.orders.TransitionOrder(ctx, &usecase.TransitionOrderInput{
			OrderID:   order.ID,
			Target:    entity.OrderStatusRejected,
			ActorName: "Vikram Shah",
		})
		requireAppError(t, err, "INVALID_TRANSITION")
	})

	t.Run("pending is not a target", func(t *testing.T) {
		_, err := f.orders.TransitionOrder(ctx, &usecase.TransitionOrderInput{
			OrderID:   order.ID,
			Target:    entity.OrderStatusPending,
			ActorName: "Vikram Shah",
		})
		requireAppError(t, err, "VALIDATION_FAILED")
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := f.orders.TransitionOrder(ctx, &usecase.TransitionOrderInput{
			OrderID:   uuid.New(),
			Target:    entity.OrderStatusApproved,
			ActorName: "Vikram Shah",
		})
		requireAppError(t, err, "ORDER_NOT_FOUND")
	})
}
