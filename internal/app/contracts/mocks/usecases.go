package mocks

import (
	"context"
	"time"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type SlotUsecase struct {
	mock.Mock
}

func (m *SlotUsecase) CreateSlot(ctx context.Context, request *requests.CreateSlot) (*responses.SlotCreated, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.SlotCreated)
	return result, args.Error(1)
}

func (m *SlotUsecase) DeleteSlot(ctx context.Context, slotID int64) error {
	args := m.Called(ctx, slotID)
	return args.Error(0)
}

func (m *SlotUsecase) ListSlots(ctx context.Context, request *requests.SlotRange) (*responses.AdminSlotList, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AdminSlotList)
	return result, args.Error(1)
}

func (m *SlotUsecase) ListAvailable(ctx context.Context, request *requests.SlotRange) (*responses.AvailableSlots, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AvailableSlots)
	return result, args.Error(1)
}

func (m *SlotUsecase) PurgePastSlots(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SlotUsecase) InvalidateAvailability(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type BookingUsecase struct {
	mock.Mock
}

func (m *BookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingCreated, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.BookingCreated)
	return result, args.Error(1)
}

func (m *BookingUsecase) CancelBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.LoginResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.LoginResult)
	return result, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, claims *models.AdminClaims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *AuthUsecase) Me(ctx context.Context, claims *models.AdminClaims) (*responses.Me, error) {
	args := m.Called(ctx, claims)
	result, _ := args.Get(0).(*responses.Me)
	return result, args.Error(1)
}

func (m *AuthUsecase) VerifyToken(ctx context.Context, token string) (*models.AdminClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*models.AdminClaims)
	return claims, args.Error(1)
}

func (m *AuthUsecase) SeedAdmin(ctx context.Context, email, password string) (*models.AdminUser, error) {
	args := m.Called(ctx, email, password)
	admin, _ := args.Get(0).(*models.AdminUser)
	return admin, args.Error(1)
}

type ContentUsecase struct {
	mock.Mock
}

func (m *ContentUsecase) GetFAQ(ctx context.Context) (*responses.FAQ, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.FAQ)
	return result, args.Error(1)
}

func (m *ContentUsecase) GetAudience(ctx context.Context) (*responses.Audience, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.Audience)
	return result, args.Error(1)
}

func (m *ContentUsecase) GetAbout(ctx context.Context) (*responses.About, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.About)
	return result, args.Error(1)
}
