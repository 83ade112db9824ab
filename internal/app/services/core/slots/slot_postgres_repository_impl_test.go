package slots

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/queries"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockedSlotRepository(t *testing.T) (*slotPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &slotPostgresRepository{DB: db, Log: zap.NewNop()}, mock
}

func TestSlotRepositoryCreate(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)
	createdAt := time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC)

	t.Run("returns the stored slot", func(t *testing.T) {
		repo, mock := newMockedSlotRepository(t)
		mock.ExpectQuery(queries.InsertSlot).
			WithArgs(start, end, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

		slot, err := repo.Create(context.Background(), &models.Slot{StartAt: start, EndAt: end, Capacity: 1})

		require.NoError(t, err)
		assert.Equal(t, int64(7), slot.ID)
		assert.Equal(t, createdAt, slot.CreatedAt)
		assert.Equal(t, 45, slot.DurationMinutes())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a unique violation to duplicate", func(t *testing.T) {
		repo, mock := newMockedSlotRepository(t)
		mock.ExpectQuery(queries.InsertSlot).
			WithArgs(start, end, 1).
			WillReturnError(&pq.Error{Code: constvars.PostgresUniqueViolation})

		slot, err := repo.Create(context.Background(), &models.Slot{StartAt: start, EndAt: end, Capacity: 1})

		assert.Nil(t, slot)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrCodeDuplicate, customErr.ErrorCode)
		assert.Equal(t, constvars.ErrClientSlotDuplicate, customErr.ClientMessage)
	})

	t.Run("other failures are server errors", func(t *testing.T) {
		repo, mock := newMockedSlotRepository(t)
		mock.ExpectQuery(queries.InsertSlot).
			WithArgs(start, end, 1).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Create(context.Background(), &models.Slot{StartAt: start, EndAt: end, Capacity: 1})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestSlotRepositoryDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newMockedSlotRepository(t)
		mock.ExpectExec(queries.DeleteSlot).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))

		found, err := repo.Delete(context.Background(), 3)

		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockedSlotRepository(t)
		mock.ExpectExec(queries.DeleteSlot).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

		found, err := repo.Delete(context.Background(), 3)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("booked slot is a conflict", func(t *testing.T) {
		repo, mock := newMockedSlotRepository(t)
		mock.ExpectExec(queries.DeleteSlot).
			WithArgs(int64(3)).
			WillReturnError(&pq.Error{Code: constvars.PostgresForeignKeyViolation})

		_, err := repo.Delete(context.Background(), 3)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrCodeSlotBooked, customErr.ErrorCode)
	})
}

func TestSlotRepositoryFindByStart(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("no rows returns nil", func(t *testing.T) {
		repo, mock := newMockedSlotRepository(t)
		mock.ExpectQuery(queries.GetSlotByStart).WithArgs(start).WillReturnError(sql.ErrNoRows)

		slot, err := repo.FindByStart(context.Background(), start)

		require.NoError(t, err)
		assert.Nil(t, slot)
	})

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockedSlotRepository(t)
		mock.ExpectQuery(queries.GetSlotByStart).
			WithArgs(start).
			WillReturnRows(sqlmock.NewRows([]string{"id", "start_at", "end_at", "capacity", "created_at"}).
				AddRow(int64(9), start, start.Add(time.Hour), 1, start))

		slot, err := repo.FindByStart(context.Background(), start)

		require.NoError(t, err)
		require.NotNil(t, slot)
		assert.Equal(t, int64(9), slot.ID)
	})
}

func TestSlotRepositoryFindByStartPrefersFreeSlot(t *testing.T) {
	// Two slots may share a start; booking must land on the one the calendar shows as free.
	assert.Contains(t, queries.GetSlotByStart,
		"ORDER BY EXISTS (SELECT 1 FROM bookings b WHERE b.slot_id = s.id), s.end_at")

	repo, mock := newMockedSlotRepository(t)
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(queries.GetSlotByStart).
		WithArgs(start).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_at", "end_at", "capacity", "created_at"}).
			AddRow(int64(12), start, start.Add(90*time.Minute), 1, start))

	slot, err := repo.FindByStart(context.Background(), start)

	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, int64(12), slot.ID)
	assert.Equal(t, start.Add(90*time.Minute), slot.EndAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepositoryFindAvailable(t *testing.T) {
	// A slot starting exactly now stays listed, matching what CreateBooking accepts.
	assert.Contains(t, queries.GetAvailableSlots, "s.start_at >= $3")

	repo, mock := newMockedSlotRepository(t)
	from := time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(queries.GetAvailableSlots).
		WithArgs(from, to, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_at", "end_at", "capacity", "created_at"}).
			AddRow(int64(3), now, now.Add(time.Hour), 1, from))

	slots, err := repo.FindAvailable(context.Background(), from, to, now)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, now, slots[0].StartAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepositoryFindAllWithBookings(t *testing.T) {
	repo, mock := newMockedSlotRepository(t)
	from := time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	first := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	columns := []string{
		"id", "start_at", "end_at", "capacity", "created_at",
		"b.id", "status", "client_name", "client_email", "client_phone", "b.created_at",
	}
	mock.ExpectQuery(queries.GetSlotsWithBookings).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), first, first.Add(time.Hour), 1, first, nil, nil, nil, nil, nil, nil).
			AddRow(int64(2), second, second.Add(time.Hour), 1, second, int64(5), "confirmed", "Anna", nil, "+48 600 100 200", second))

	result, err := repo.FindAllWithBookings(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Nil(t, result[0].Booking)
	require.NotNil(t, result[1].Booking)
	assert.Equal(t, int64(5), result[1].Booking.ID)
	assert.Equal(t, int64(2), result[1].Booking.SlotID)
	assert.Equal(t, "Anna", *result[1].Booking.ClientName)
	assert.Nil(t, result[1].Booking.ClientEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepositoryDeletePastUnbooked(t *testing.T) {
	repo, mock := newMockedSlotRepository(t)
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(queries.DeletePastUnbookedSlots).WithArgs(cutoff).WillReturnResult(sqlmock.NewResult(0, 4))

	count, err := repo.DeletePastUnbooked(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
