package jwtmanager

import (
	"context"
	"testing"
	"time"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, secret string) *JWTManager {
	t.Helper()
	cfg := &config.InternalConfig{JWT: config.AppJWT{Secret: secret, ExpTimeInHour: 12}}
	manager, err := NewJWTManager(cfg, zap.NewNop())
	require.NoError(t, err)
	return manager
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	_, err := NewJWTManager(&config.InternalConfig{JWT: config.AppJWT{ExpTimeInHour: 12}}, zap.NewNop())
	assert.Error(t, err)
}

func TestCreateAndVerifyToken(t *testing.T) {
	manager := newTestManager(t, "test-secret")
	ctx := context.Background()

	token, issued, err := manager.CreateToken(ctx, &models.AdminUser{ID: 42, Email: "admin@valivio.pl"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, issued.TokenID)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), issued.ExpiresAt, time.Minute)

	verified, err := manager.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), verified.AdminID)
	assert.Equal(t, "admin@valivio.pl", verified.Email)
	assert.Equal(t, issued.TokenID, verified.TokenID)
	assert.True(t, issued.ExpiresAt.Equal(verified.ExpiresAt))
}

func TestVerifyTokenRejects(t *testing.T) {
	manager := newTestManager(t, "test-secret")
	ctx := context.Background()
	admin := &models.AdminUser{ID: 1, Email: "admin@valivio.pl"}

	t.Run("expired", func(t *testing.T) {
		past := newTestManager(t, "test-secret")
		past.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
		token, _, err := past.CreateToken(ctx, admin)
		require.NoError(t, err)

		_, err = manager.VerifyToken(ctx, token)
		assert.Error(t, err)
	})

	t.Run("other secret", func(t *testing.T) {
		token, _, err := newTestManager(t, "another-secret").CreateToken(ctx, admin)
		require.NoError(t, err)

		_, err = manager.VerifyToken(ctx, token)
		assert.Error(t, err)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "1",
			ID:        "jti",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = manager.VerifyToken(ctx, token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := manager.VerifyToken(ctx, "not-a-token")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := manager.VerifyToken(ctx, " ")
		assert.Error(t, err)
	})
}
