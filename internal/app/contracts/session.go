package contracts

import (
	"context"
	"valivio-service/internal/app/models"
)

type TokenManager interface {
	CreateToken(ctx context.Context, admin *models.AdminUser) (string, *models.AdminClaims, error)
	VerifyToken(ctx context.Context, token string) (*models.AdminClaims, error)
}
