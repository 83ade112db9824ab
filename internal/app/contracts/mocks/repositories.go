// Package mocks holds testify mocks for the contracts package.
package mocks

import (
	"context"
	"time"
	"valivio-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type SlotRepository struct {
	mock.Mock
}

func (m *SlotRepository) Create(ctx context.Context, slot *models.Slot) (*models.Slot, error) {
	args := m.Called(ctx, slot)
	created, _ := args.Get(0).(*models.Slot)
	return created, args.Error(1)
}

func (m *SlotRepository) Delete(ctx context.Context, slotID int64) (bool, error) {
	args := m.Called(ctx, slotID)
	return args.Bool(0), args.Error(1)
}

func (m *SlotRepository) FindByStart(ctx context.Context, startAt time.Time) (*models.Slot, error) {
	args := m.Called(ctx, startAt)
	slot, _ := args.Get(0).(*models.Slot)
	return slot, args.Error(1)
}

func (m *SlotRepository) FindAvailable(ctx context.Context, from, to, now time.Time) ([]models.Slot, error) {
	args := m.Called(ctx, from, to, now)
	slots, _ := args.Get(0).([]models.Slot)
	return slots, args.Error(1)
}

func (m *SlotRepository) FindAllWithBookings(ctx context.Context, from, to time.Time) ([]models.SlotWithBooking, error) {
	args := m.Called(ctx, from, to)
	slots, _ := args.Get(0).([]models.SlotWithBooking)
	return slots, args.Error(1)
}

func (m *SlotRepository) DeletePastUnbooked(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	created, _ := args.Get(0).(*models.Booking)
	return created, args.Error(1)
}

func (m *BookingRepository) Delete(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	args := m.Called(ctx, email)
	admin, _ := args.Get(0).(*models.AdminUser)
	return admin, args.Error(1)
}

func (m *AdminRepository) FindByID(ctx context.Context, adminID int64) (*models.AdminUser, error) {
	args := m.Called(ctx, adminID)
	admin, _ := args.Get(0).(*models.AdminUser)
	return admin, args.Error(1)
}

func (m *AdminRepository) Upsert(ctx context.Context, email, passwordHash string) (*models.AdminUser, error) {
	args := m.Called(ctx, email, passwordHash)
	admin, _ := args.Get(0).(*models.AdminUser)
	return admin, args.Error(1)
}
