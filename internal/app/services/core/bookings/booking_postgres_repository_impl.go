package bookings

import (
	"context"
	"database/sql"
	"sync"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/queries"
	"valivio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	bookingPostgresRepositoryInstance contracts.BookingRepository
	onceBookingPostgresRepository     sync.Once
)

func NewBookingPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.BookingRepository {
	onceBookingPostgresRepository.Do(func() {
		instance := &bookingPostgresRepository{
			DB:  db,
			Log: logger,
		}
		bookingPostgresRepositoryInstance = instance
	})
	return bookingPostgresRepositoryInstance
}

// Create is a plain insert: UNIQUE(slot_id) decides who wins a race for the
// same slot and the foreign key catches a slot deleted in the meantime.
func (repo *bookingPostgresRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSlotIDKey, booking.SlotID),
	)

	created := *booking
	err := repo.DB.QueryRowContext(ctx, queries.InsertBooking,
		booking.SlotID,
		booking.Status,
		booking.ClientName,
		booking.ClientEmail,
		booking.ClientPhone,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		switch utils.PostgresErrorCode(err) {
		case constvars.PostgresUniqueViolation:
			repo.Log.Warn("bookingPostgresRepository.Create slot already taken",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingSlotIDKey, booking.SlotID),
			)
			return nil, exceptions.ErrSlotTaken(err)
		case constvars.PostgresForeignKeyViolation:
			repo.Log.Warn("bookingPostgresRepository.Create slot no longer exists",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingSlotIDKey, booking.SlotID),
			)
			return nil, exceptions.ErrSlotNotFound(err)
		}
		repo.Log.Error("bookingPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("bookingPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, created.ID),
	)
	return &created, nil
}

func (repo *bookingPostgresRepository) Delete(ctx context.Context, bookingID int64) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.DeleteBooking, bookingID)
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.Delete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}

	repo.Log.Info("bookingPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
		zap.Int64(constvars.LoggingCountKey, affected),
	)
	return affected > 0, nil
}
