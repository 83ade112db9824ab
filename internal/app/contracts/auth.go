package contracts

import (
	"context"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.LoginResult, error)
	Logout(ctx context.Context, claims *models.AdminClaims) error
	Me(ctx context.Context, claims *models.AdminClaims) (*responses.Me, error)
	// VerifyToken resolves a raw token into claims, rejecting revoked ones.
	VerifyToken(ctx context.Context, token string) (*models.AdminClaims, error)
	SeedAdmin(ctx context.Context, email, password string) (*models.AdminUser, error)
}

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, adminID int64) (*models.AdminUser, error)
	Upsert(ctx context.Context, email, passwordHash string) (*models.AdminUser, error)
}
