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

func TestAccountService_Register(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, entity.RoleStreetVendor, user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := f.accounts.Register(ctx, &usecase.RegisterInput{
			FullName: "Nobody",
			Email:    "nobody@example.com",
			Phone:    "5559998888",
			Password: "pw",
			Role:     entity.Role("superuser"),
		})
		requireAppError(t, err, "VALIDATION_FAILED")
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := f.accounts.Register(ctx, &usecase.RegisterInput{
			FullName: "Asha Again",
			Email:    "asha@example.com",
			Phone:    "5550002222",
			Password: "pw",
			Role:     entity.RoleSupplier,
		})
		requireAppError(t, err, "DUPLICATE_IDENTITY")
	})

	t.Run("rejects duplicate phone", func(t *testing.T) {
		_, err := f.accounts.Register(ctx, &usecase.RegisterInput{
			FullName: "Phone Thief",
			Email:    "other@example.com",
			Phone:    "5550001111",
			Password: "pw",
			Role:     entity.RoleSupplier,
		})
		requireAppError(t, err, "DUPLICATE_IDENTITY")
	})
}

func TestAccountService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleStreetVendor)

	t.Run("by email", func(t *testing.T) {
		output, err := f.accounts.Login(ctx, &usecase.LoginInput{
			Identifier: "asha@example.com",
			Password:   "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, output.User.ID)
		assert.NotEmpty(t, output.AccessToken)
		assert.NotEmpty(t, output.RefreshToken)
	})

	t.Run("by phone", func(t *testing.T) {
		output, err := f.accounts.Login(ctx, &usecase.LoginInput{
			Identifier: "5550001111",
			Password:   "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, output.User.ID)
	})

	t.Run("exact password match only", func(t *testing.T) {
		_, err := f.accounts.Login(ctx, &usecase.LoginInput{
			Identifier: "asha@example.com",
			Password:   "Secret123",
		})
		requireAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown identifier maps to invalid credentials", func(t *testing.T) {
		_, err := f.accounts.Login(ctx, &usecase.LoginInput{
			Identifier: "ghost@example.com",
			Password:   "secret123",
		})
		requireAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestAccountService_PasswordStoredVerbatim(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	output, err := f.accounts.Register(ctx, &usecase.RegisterInput{
		FullName: "Vikram Shah",
		Email:    "vikram@example.com",
		Phone:    "5553334444",
		Password: "  P@ss with spaces  ",
		Role:     entity.RoleSupplier,
	})
	require.NoError(t, err)
	assert.Equal(t, "  P@ss with spaces  ", output.User.Password)

	// Login succeeds only with the byte-identical password.
	_, err = f.accounts.Login(ctx, &usecase.LoginInput{
		Identifier: "vikram@example.com",
		Password:   "P@ss with spaces",
	})
	requireAppError(t, err, "INVALID_CREDENTIALS")

	loggedIn, err := f.accounts.Login(ctx, &usecase.LoginInput{
		Identifier: "vikram@example.com",
		Password:   "  P@ss with spaces  ",
	})
	require.NoError(t, err)
	assert.Equal(t, output.User.ID, loggedIn.User.ID)
}

func TestAccountService_Profile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.registerUser(t, "Asha Rao", "asha@example.com", "5550001111", entity.RoleAdmin)

	found, err := f.accounts.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", found.FullName)

	_, err = f.accounts.Profile(ctx, uuid.New())
	requireAppError(t, err, "USER_NOT_FOUND")
}
