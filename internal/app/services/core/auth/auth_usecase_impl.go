package auth

import (
	"context"
	"fmt"
	"sync"
	"time"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/dto/responses"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AdminRepository contracts.AdminRepository
	RedisRepository contracts.RedisRepository
	TokenManager    contracts.TokenManager
	Log             *zap.Logger
	now             func() time.Time
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	adminRepository contracts.AdminRepository,
	redisRepository contracts.RedisRepository,
	tokenManager contracts.TokenManager,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = newAuthUsecase(adminRepository, redisRepository, tokenManager, logger)
	})
	return authUsecaseInstance
}

func newAuthUsecase(
	adminRepository contracts.AdminRepository,
	redisRepository contracts.RedisRepository,
	tokenManager contracts.TokenManager,
	logger *zap.Logger,
) *authUsecase {
	return &authUsecase{
		AdminRepository: adminRepository,
		RedisRepository: redisRepository,
		TokenManager:    tokenManager,
		Log:             logger,
		now:             time.Now,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.LoginResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request.Sanitize()
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Warn("authUsecase.Login validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}

	admin, err := uc.AdminRepository.FindByEmail(ctx, utils.NormalizeEmail(request.Email))
	if err != nil {
		uc.Log.Error("authUsecase.Login error from AdminRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if admin == nil || !utils.CheckPasswordHash(request.Password, admin.PasswordHash) {
		uc.Log.Warn("authUsecase.Login rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAdminEmailKey, request.Email),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, claims, err := uc.TokenManager.CreateToken(ctx, admin)
	if err != nil {
		uc.Log.Error("authUsecase.Login error from TokenManager.CreateToken",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAdminIDKey, admin.ID),
		zap.String(constvars.LoggingTokenIDKey, claims.TokenID),
	)
	return &responses.LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		Admin:     admin.ConvertIntoResponse(),
	}, nil
}

// Logout denylists the token id until the token would have expired anyway.
func (uc *authUsecase) Logout(ctx context.Context, claims *models.AdminClaims) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAdminIDKey, claims.AdminID),
	)

	remaining := claims.ExpiresAt.Sub(uc.now())
	if remaining <= 0 {
		return nil
	}

	key := fmt.Sprintf(constvars.RedisKeyTokenDenylistFormat, claims.TokenID)
	if err := uc.RedisRepository.Set(ctx, key, claims.AdminID, remaining); err != nil {
		uc.Log.Error("authUsecase.Logout error from RedisRepository.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenIDKey, claims.TokenID),
	)
	return nil
}

func (uc *authUsecase) Me(ctx context.Context, claims *models.AdminClaims) (*responses.Me, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	admin, err := uc.AdminRepository.FindByID(ctx, claims.AdminID)
	if err != nil {
		uc.Log.Error("authUsecase.Me error from AdminRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if admin == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("admin %d no longer exists", claims.AdminID))
	}
	return &responses.Me{OK: true, Admin: admin.ConvertIntoResponse()}, nil
}

func (uc *authUsecase) VerifyToken(ctx context.Context, token string) (*models.AdminClaims, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	claims, err := uc.TokenManager.VerifyToken(ctx, token)
	if err != nil {
		uc.Log.Info("authUsecase.VerifyToken rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	key := fmt.Sprintf(constvars.RedisKeyTokenDenylistFormat, claims.TokenID)
	revoked, err := uc.RedisRepository.Exists(ctx, key)
	if err != nil {
		uc.Log.Error("authUsecase.VerifyToken error from RedisRepository.Exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}
	if revoked {
		return nil, exceptions.ErrTokenRevoked(fmt.Errorf("token %s was logged out", claims.TokenID))
	}
	return claims, nil
}

func (uc *authUsecase) SeedAdmin(ctx context.Context, email, password string) (*models.AdminUser, error) {
	email = utils.NormalizeEmail(email)
	uc.Log.Info("authUsecase.SeedAdmin called",
		zap.String(constvars.LoggingAdminEmailKey, email),
	)

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	admin, err := uc.AdminRepository.Upsert(ctx, email, hash)
	if err != nil {
		uc.Log.Error("authUsecase.SeedAdmin error from AdminRepository.Upsert",
			zap.String(constvars.LoggingAdminEmailKey, email),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.SeedAdmin succeeded",
		zap.Int64(constvars.LoggingAdminIDKey, admin.ID),
	)
	return admin, nil
}
