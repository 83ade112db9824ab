package mocks

import (
	"context"
	"time"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *LockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MailerService struct {
	mock.Mock
}

func (m *MailerService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) CreateToken(ctx context.Context, admin *models.AdminUser) (string, *models.AdminClaims, error) {
	args := m.Called(ctx, admin)
	claims, _ := args.Get(1).(*models.AdminClaims)
	return args.String(0), claims, args.Error(2)
}

func (m *TokenManager) VerifyToken(ctx context.Context, token string) (*models.AdminClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*models.AdminClaims)
	return claims, args.Error(1)
}

type ContentStorage struct {
	mock.Mock
}

func (m *ContentStorage) ReadObject(ctx context.Context, objectName string) ([]byte, error) {
	args := m.Called(ctx, objectName)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}
