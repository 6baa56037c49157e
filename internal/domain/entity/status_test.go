package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   OrderStatus
		to     OrderStatus
		wantOK bool
	}{
		{name: "pending to approved", from: OrderStatusPending, to: OrderStatusApproved, wantOK: true},
		{name: "pending to rejected", from: OrderStatusPending, to: OrderStatusRejected, wantOK: true},
		{name: "approved is terminal", from: OrderStatusApproved, to: OrderStatusRejected, wantOK: false},
		{name: "rejected is terminal", from: OrderStatusRejected, to: OrderStatusApproved, wantOK: false},
		{name: "no return to pending", from: OrderStatusApproved, to: OrderStatusPending, wantOK: false},
		{name: "no self transition", from: OrderStatusPending, to: OrderStatusPending, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOK, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   PaymentStatus
		to     PaymentStatus
		wantOK bool
	}{
		{name: "pending to settled", from: PaymentStatusPending, to: PaymentStatusSettled, wantOK: true},
		{name: "pending to rejected", from: PaymentStatusPending, to: PaymentStatusRejected, wantOK: true},
		{name: "settled is terminal", from: PaymentStatusSettled, to: PaymentStatusRejected, wantOK: false},
		{name: "no return to pending", from: PaymentStatusSettled, to: PaymentStatusPending, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOK, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestComplaintStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, ComplaintStatusPending.CanTransitionTo(ComplaintStatusResolved))
	assert.False(t, ComplaintStatusResolved.CanTransitionTo(ComplaintStatusPending))
	assert.False(t, ComplaintStatusResolved.CanTransitionTo(ComplaintStatusResolved))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleStreetVendor.IsValid())
	assert.True(t, RoleSupplier.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestResourceCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryIngredients.IsValid())
	assert.True(t, CategorySupplies.IsValid())
	assert.False(t, ResourceCategory("toys").IsValid())
}
