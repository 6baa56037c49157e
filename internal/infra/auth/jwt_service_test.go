package auth

import (
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(newTestConfig())
	assert.NoError(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID, entity.RoleAdmin.String())
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	t.Run("access token carries identity and role", func(t *testing.T) {
		token, err := svc.ValidateToken(accessToken, "access-secret")
		require.NoError(t, err)
		require.True(t, token.Valid)

		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, userID.String(), claims["sub"])
		assert.Equal(t, entity.RoleAdmin.String(), claims["role"])
		assert.Equal(t, "access", claims["type"])
	})

	t.Run("refresh token has no role", func(t *testing.T) {
		token, err := svc.ValidateToken(refreshToken, "refresh-secret")
		require.NoError(t, err)
		require.True(t, token.Valid)

		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, "refresh", claims["type"])
		assert.NotContains(t, claims, "role")
	})

	t.Run("wrong secret fails validation", func(t *testing.T) {
		_, err := svc.ValidateToken(accessToken, "refresh-secret")
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token", "access-secret")
		assert.Error(t, err)
	})
}
