package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintService_SubmitComplaint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	party := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)

	complaint, err := f.complaints.SubmitComplaint(ctx, &usecase.SubmitComplaintInput{
		PartyID:  party.ID,
		Category: "Order",
		Message:  "  Delivery arrived two days late.  ",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ComplaintStatusPending, complaint.Status)
	assert.Equal(t, "Asha Rao", complaint.PartyName)
	assert.Equal(t, "Delivery arrived two days late.", complaint.Message)
	assert.True(t, complaint.ResolvedAt.IsZero())

	t.Run("whitespace-only message rejected", func(t *testing.T) {
		_, err := f.complaints.SubmitComplaint(ctx, &usecase.SubmitComplaintInput{
			PartyID:  party.ID,
			Category: "Order",
			Message:  "   \t\n ",
		})
		requireAppError(t, err, "EMPTY_MESSAGE")
	})

	t.Run("unknown party rejected", func(t *testing.T) {
		_, err := f.complaints.SubmitComplaint(ctx, &usecase.SubmitComplaintInput{
			PartyID:  uuid.New(),
			Category: "Order",
			Message:  "Valid message",
		})
		requireAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestComplaintService_ResolveComplaint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	party := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)
	complaint, err := f.complaints.SubmitComplaint(ctx, &usecase.SubmitComplaintInput{
		PartyID:  party.ID,
		Category: "Payment",
		Message:  "Charged twice for one order.",
	})
	require.NoError(t, err)

	resolved, err := f.complaints.ResolveComplaint(ctx, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusResolved, resolved.Status)
	assert.False(t, resolved.ResolvedAt.IsZero())

	t.Run("resolved is terminal", func(t *testing.T) {
		_, err := f.complaints.ResolveComplaint(ctx, complaint.ID)
		requireAppError(t, err, "INVALID_TRANSITION")
	})

	t.Run("unknown complaint", func(t *testing.T) {
		_, err := f.complaints.ResolveComplaint(ctx, uuid.New())
		requireAppError(t, err, "COMPLAINT_NOT_FOUND")
	})
}

func TestComplaintService_DeleteComplaint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	party := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)
	complaint, err := f.complaints.SubmitComplaint(ctx, &usecase.SubmitComplaintInput{
		PartyID:  party.ID,
		Category: "Order",
		Message:  "Wrong items delivered.",
	})
	require.NoError(t, err)

	require.NoError(t, f.complaints.DeleteComplaint(ctx, complaint.ID))

	listed, err := f.complaints.ListComplaints(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = f.complaints.DeleteComplaint(ctx, complaint.ID)
	requireAppError(t, err, "COMPLAINT_NOT_FOUND")
}

func TestComplaintService_ListComplaints_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	party := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)

	var ids []uuid.UUID
	for _, msg := range []string{"first", "second", "third"} {
		complaint, err := f.complaints.SubmitComplaint(ctx, &usecase.SubmitComplaintInput{
			PartyID:  party.ID,
			Category: "Order",
			Message:  msg,
		})
		require.NoError(t, err)
		ids = append(ids, complaint.ID)
	}

	listed, err := f.complaints.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, ids[2], listed[0].ID)
	assert.Equal(t, ids[0], listed[2].ID)
}
