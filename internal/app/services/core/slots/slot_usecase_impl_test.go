package slots

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/contracts/mocks"
	"valivio-service/internal/app/models"
	"valivio-service/internal/app/services/shared/redis"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/exceptions"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var warsaw = mustLoadLocation("Europe/Warsaw")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{Timezone: "Europe/Warsaw"},
		Booking: config.Booking{
			LegacyWindowDays:            21,
			MaxRangeDays:                366,
			AvailabilityCacheTTLSeconds: 60,
		},
		Worker: config.Worker{SlotCleanupCronSpec: "@daily", SlotRetentionDays: 30},
	}
}

type usecaseFixture struct {
	usecase *slotUsecase
	repo    *mocks.SlotRepository
	redis   *miniredis.Miniredis
}

func newUsecaseFixture(t *testing.T) *usecaseFixture {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := new(mocks.SlotRepository)
	usecase, err := newSlotUsecase(repo, redis.NewRedisRepository(client), testConfig(), zap.NewNop())
	require.NoError(t, err)
	// Saturday 2025-03-01 10:00 in Warsaw
	usecase.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }

	return &usecaseFixture{usecase: usecase, repo: repo, redis: server}
}

func requireCustomError(t *testing.T, err error, status int, clientMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, status, customErr.StatusCode)
	if clientMessage != "" {
		assert.Equal(t, clientMessage, customErr.ClientMessage)
	}
}

func TestCreateSlot(t *testing.T) {
	t.Run("stores the UTC instant of the local wall time", func(t *testing.T) {
		f := newUsecaseFixture(t)
		wantStart := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
		f.repo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Slot) bool {
			return s.StartAt.Equal(wantStart) && s.EndAt.Equal(wantStart.Add(45*time.Minute)) && s.Capacity == 1
		})).Return(&models.Slot{ID: 5, StartAt: wantStart, EndAt: wantStart.Add(45 * time.Minute), Capacity: 1}, nil)

		result, err := f.usecase.CreateSlot(context.Background(), &requests.CreateSlot{Date: "2025-03-10", Time: "09:00", Duration: 45})

		require.NoError(t, err)
		assert.True(t, result.OK)
		assert.Equal(t, int64(5), result.Slot.ID)
		assert.Equal(t, "2025-03-10", result.Slot.Date)
		assert.Equal(t, "09:00", result.Slot.Time)
		assert.Equal(t, 45, result.Slot.Duration)
		version, err := f.redis.Get(constvars.RedisKeyAvailabilityVersion)
		require.NoError(t, err)
		assert.Equal(t, "1", version)
		f.repo.AssertExpectations(t)
	})

	t.Run("summer time offset", func(t *testing.T) {
		f := newUsecaseFixture(t)
		wantStart := time.Date(2025, 7, 1, 7, 30, 0, 0, time.UTC)
		f.repo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Slot) bool {
			return s.StartAt.Equal(wantStart)
		})).Return(&models.Slot{ID: 6, StartAt: wantStart, EndAt: wantStart.Add(time.Hour), Capacity: 1}, nil)

		result, err := f.usecase.CreateSlot(context.Background(), &requests.CreateSlot{Date: "2025-07-01", Time: "09:30", Duration: 60})

		require.NoError(t, err)
		assert.Equal(t, "09:30", result.Slot.Time)
	})

	invalidInput := []struct {
		name    string
		request requests.CreateSlot
		message string
	}{
		{name: "missing date", request: requests.CreateSlot{Time: "09:00", Duration: 30}, message: constvars.ErrClientSlotInputInvalid},
		{name: "missing time", request: requests.CreateSlot{Date: "2025-03-10", Duration: 30}, message: constvars.ErrClientSlotInputInvalid},
		{name: "zero duration", request: requests.CreateSlot{Date: "2025-03-10", Time: "09:00"}, message: constvars.ErrClientSlotInputInvalid},
		{name: "negative duration", request: requests.CreateSlot{Date: "2025-03-10", Time: "09:00", Duration: -15}, message: constvars.ErrClientSlotInputInvalid},
		{name: "duration above one week", request: requests.CreateSlot{Date: "2025-03-10", Time: "09:00", Duration: 10081}, message: constvars.ErrClientSlotInputInvalid},
		{name: "duration overflowing nanoseconds", request: requests.CreateSlot{Date: "2025-03-10", Time: "09:00", Duration: 400000000}, message: constvars.ErrClientSlotInputInvalid},
		{name: "impossible date", request: requests.CreateSlot{Date: "2025-02-30", Time: "09:00", Duration: 30}, message: constvars.ErrClientInvalidDateOrTime},
		{name: "unpadded time", request: requests.CreateSlot{Date: "2025-03-10", Time: "9:00", Duration: 30}, message: constvars.ErrClientInvalidDateOrTime},
		{name: "daylight saving gap", request: requests.CreateSlot{Date: "2025-03-30", Time: "02:30", Duration: 30}, message: constvars.ErrClientInvalidDateOrTime},
	}
	for _, tt := range invalidInput {
		t.Run(tt.name, func(t *testing.T) {
			f := newUsecaseFixture(t)
			request := tt.request

			_, err := f.usecase.CreateSlot(context.Background(), &request)

			requireCustomError(t, err, http.StatusBadRequest, tt.message)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("duplicate passes through", func(t *testing.T) {
		f := newUsecaseFixture(t)
		f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, exceptions.ErrSlotDuplicate(errors.New("23505")))

		_, err := f.usecase.CreateSlot(context.Background(), &requests.CreateSlot{Date: "2025-03-10", Time: "09:00", Duration: 30})

		requireCustomError(t, err, http.StatusConflict, constvars.ErrClientSlotDuplicate)
		assert.False(t, f.redis.Exists(constvars.RedisKeyAvailabilityVersion))
	})
}

func TestDeleteSlot(t *testing.T) {
	t.Run("missing slot", func(t *testing.T) {
		f := newUsecaseFixture(t)
		f.repo.On("Delete", mock.Anything, int64(8)).Return(false, nil)

		err := f.usecase.DeleteSlot(context.Background(), 8)

		requireCustomError(t, err, http.StatusNotFound, constvars.ErrClientSlotNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		f := newUsecaseFixture(t)
		f.repo.On("Delete", mock.Anything, int64(8)).Return(true, nil)

		require.NoError(t, f.usecase.DeleteSlot(context.Background(), 8))
		assert.True(t, f.redis.Exists(constvars.RedisKeyAvailabilityVersion))
	})
}

func TestListAvailableGroupsAndCaches(t *testing.T) {
	f := newUsecaseFixture(t)
	from := time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 21, 23, 0, 0, 0, time.UTC)

	at := func(day, hour, minute int) models.Slot {
		start := time.Date(2025, 3, day, hour, minute, 0, 0, warsaw).UTC()
		return models.Slot{StartAt: start, EndAt: start.Add(time.Hour), Capacity: 1}
	}
	f.repo.On("FindAvailable", mock.Anything, from, to, mock.Anything).Return([]models.Slot{
		at(3, 10, 30),
		at(3, 9, 0),
		at(4, 23, 30),
		at(3, 9, 0),
	}, nil)

	first, err := f.usecase.ListAvailable(context.Background(), &requests.SlotRange{})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"2025-03-03": {"09:00", "10:30"},
		"2025-03-04": {"23:30"},
	}, first.Slots)

	second, err := f.usecase.ListAvailable(context.Background(), &requests.SlotRange{From: "2025-03-01"})
	require.NoError(t, err)
	assert.Equal(t, first.Slots, second.Slots)
	f.repo.AssertNumberOfCalls(t, "FindAvailable", 1)

	require.NoError(t, f.usecase.InvalidateAvailability(context.Background()))
	_, err = f.usecase.ListAvailable(context.Background(), &requests.SlotRange{})
	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "FindAvailable", 2)
}

func TestListAvailableEmptyIsObject(t *testing.T) {
	f := newUsecaseFixture(t)
	f.repo.On("FindAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]models.Slot{}, nil)

	result, err := f.usecase.ListAvailable(context.Background(), &requests.SlotRange{From: "2025-03-02", To: "2025-03-02"})

	require.NoError(t, err)
	assert.NotNil(t, result.Slots)
	assert.Empty(t, result.Slots)
}

func TestResolveRange(t *testing.T) {
	f := newUsecaseFixture(t)

	t.Run("inclusive end across the clock change", func(t *testing.T) {
		window, err := f.usecase.resolveRange(&requests.SlotRange{From: "2025-03-29", To: "2025-03-30"})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 28, 23, 0, 0, 0, time.UTC), window.From)
		assert.Equal(t, time.Date(2025, 3, 30, 22, 0, 0, 0, time.UTC), window.To)
		assert.Equal(t, 2, window.days(warsaw))
	})

	t.Run("legacy window", func(t *testing.T) {
		window, err := f.usecase.resolveRange(&requests.SlotRange{From: "2025-03-10"})

		require.NoError(t, err)
		assert.Equal(t, 21, window.days(warsaw))
		assert.Equal(t, "2025-03-31", window.ToLabel)
	})

	t.Run("full year is allowed", func(t *testing.T) {
		_, err := f.usecase.resolveRange(&requests.SlotRange{From: "2025-01-01", To: "2025-12-31"})
		assert.NoError(t, err)
	})

	invalid := []requests.SlotRange{
		{From: "2025-03-10", To: "2025-03-09"},
		{From: "2025-01-01", To: "2026-01-02"},
		{From: "2025-3-1"},
		{From: "2025-02-30"},
		{To: "tomorrow"},
	}
	for _, request := range invalid {
		request := request
		t.Run(request.From+"_"+request.To, func(t *testing.T) {
			_, err := f.usecase.resolveRange(&request)
			requireCustomError(t, err, http.StatusBadRequest, constvars.ErrClientInvalidRange)
		})
	}
}

func TestListSlotsIncludesBookings(t *testing.T) {
	f := newUsecaseFixture(t)
	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	email := "jan@example.com"
	f.repo.On("FindAllWithBookings", mock.Anything, mock.Anything, mock.Anything).Return([]models.SlotWithBooking{
		{Slot: models.Slot{ID: 1, StartAt: start, EndAt: start.Add(time.Hour), Capacity: 1}},
		{
			Slot:    models.Slot{ID: 2, StartAt: start.Add(2 * time.Hour), EndAt: start.Add(3 * time.Hour), Capacity: 1},
			Booking: &models.Booking{ID: 9, SlotID: 2, Status: constvars.BookingStatusConfirmed, ClientEmail: &email},
		},
	}, nil)

	result, err := f.usecase.ListSlots(context.Background(), &requests.SlotRange{})

	require.NoError(t, err)
	require.Len(t, result.Slots, 2)
	assert.Nil(t, result.Slots[0].Booking)
	require.NotNil(t, result.Slots[1].Booking)
	assert.Equal(t, "11:00", result.Slots[1].Booking.Time)
	assert.Equal(t, &email, result.Slots[1].Booking.ClientEmail)
}

func TestPurgePastSlots(t *testing.T) {
	f := newUsecaseFixture(t)
	cutoff := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)
	f.repo.On("DeletePastUnbooked", mock.Anything, cutoff).Return(int64(3), nil)

	count, err := f.usecase.PurgePastSlots(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.True(t, f.redis.Exists(constvars.RedisKeyAvailabilityVersion))
}
