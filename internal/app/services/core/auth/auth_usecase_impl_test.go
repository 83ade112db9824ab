package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
	"valivio-service/internal/app/contracts/mocks"
	"valivio-service/internal/app/models"
	"valivio-service/internal/app/services/shared/redis"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	usecase *authUsecase
	admins  *mocks.AdminRepository
	tokens  *mocks.TokenManager
	redis   *miniredis.Miniredis
	now     time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	f := &authFixture{
		admins: new(mocks.AdminRepository),
		tokens: new(mocks.TokenManager),
		redis:  server,
		now:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.usecase = newAuthUsecase(f.admins, redis.NewRedisRepository(client), f.tokens, zap.NewNop())
	f.usecase.now = func() time.Time { return f.now }
	return f
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, status, customErr.StatusCode)
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("sekret123")
	require.NoError(t, err)
	admin := &models.AdminUser{ID: 1, Email: "admin@example.com", PasswordHash: hash}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		f := newAuthFixture(t)
		expiresAt := f.now.Add(12 * time.Hour)
		f.admins.On("FindByEmail", mock.Anything, "admin@example.com").Return(admin, nil)
		f.tokens.On("CreateToken", mock.Anything, admin).Return("signed", &models.AdminClaims{
			AdminID: 1, Email: admin.Email, TokenID: "jti-1", ExpiresAt: expiresAt,
		}, nil)

		result, err := f.usecase.Login(context.Background(), &requests.Login{Email: " Admin@Example.com ", Password: "sekret123"})

		require.NoError(t, err)
		assert.Equal(t, "signed", result.Token)
		assert.Equal(t, expiresAt, result.ExpiresAt)
		assert.Equal(t, int64(1), result.Admin.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admins.On("FindByEmail", mock.Anything, "admin@example.com").Return(admin, nil)

		_, err := f.usecase.Login(context.Background(), &requests.Login{Email: "admin@example.com", Password: "wrong"})

		requireStatus(t, err, http.StatusUnauthorized)
		f.tokens.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything)
	})

	t.Run("unknown admin", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admins.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := f.usecase.Login(context.Background(), &requests.Login{Email: "ghost@example.com", Password: "sekret123"})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.usecase.Login(context.Background(), &requests.Login{Email: "not-an-email"})

		requireStatus(t, err, http.StatusUnauthorized)
		f.admins.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newAuthFixture(t)
	claims := &models.AdminClaims{AdminID: 1, TokenID: "jti-9", ExpiresAt: f.now.Add(2 * time.Hour)}
	f.tokens.On("VerifyToken", mock.Anything, "signed").Return(claims, nil)

	verified, err := f.usecase.VerifyToken(context.Background(), "signed")
	require.NoError(t, err)
	assert.Equal(t, claims, verified)

	require.NoError(t, f.usecase.Logout(context.Background(), claims))

	key := fmt.Sprintf(constvars.RedisKeyTokenDenylistFormat, "jti-9")
	assert.True(t, f.redis.Exists(key))
	assert.Equal(t, 2*time.Hour, f.redis.TTL(key))

	_, err = f.usecase.VerifyToken(context.Background(), "signed")
	requireStatus(t, err, http.StatusUnauthorized)

	f.redis.FastForward(2*time.Hour + time.Second)
	assert.False(t, f.redis.Exists(key))
}

func TestLogoutOfExpiredTokenIsNoop(t *testing.T) {
	f := newAuthFixture(t)
	claims := &models.AdminClaims{AdminID: 1, TokenID: "jti-old", ExpiresAt: f.now.Add(-time.Minute)}

	require.NoError(t, f.usecase.Logout(context.Background(), claims))
	assert.False(t, f.redis.Exists(fmt.Sprintf(constvars.RedisKeyTokenDenylistFormat, "jti-old")))
}

func TestVerifyTokenRejectsInvalid(t *testing.T) {
	f := newAuthFixture(t)
	f.tokens.On("VerifyToken", mock.Anything, "garbage").Return(nil, errors.New("token is malformed"))

	_, err := f.usecase.VerifyToken(context.Background(), "garbage")

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientNotLoggedIn, customErr.ClientMessage)
}

func TestMe(t *testing.T) {
	f := newAuthFixture(t)
	f.admins.On("FindByID", mock.Anything, int64(1)).Return(&models.AdminUser{ID: 1, Email: "admin@example.com"}, nil)
	f.admins.On("FindByID", mock.Anything, int64(2)).Return(nil, nil)

	me, err := f.usecase.Me(context.Background(), &models.AdminClaims{AdminID: 1})
	require.NoError(t, err)
	assert.True(t, me.OK)
	assert.Equal(t, "admin@example.com", me.Admin.Email)

	_, err = f.usecase.Me(context.Background(), &models.AdminClaims{AdminID: 2})
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestSeedAdminHashesPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.admins.On("Upsert", mock.Anything, "owner@example.com", mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("sekret123", hash)
	})).Return(&models.AdminUser{ID: 3, Email: "owner@example.com"}, nil)

	admin, err := f.usecase.SeedAdmin(context.Background(), " Owner@Example.com", "sekret123")

	require.NoError(t, err)
	assert.Equal(t, int64(3), admin.ID)
	f.admins.AssertExpectations(t)
}
