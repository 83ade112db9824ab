package slots

import (
	"context"
	"database/sql"
	"sync"
	"time"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/queries"
	"valivio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type slotPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	slotPostgresRepositoryInstance contracts.SlotRepository
	onceSlotPostgresRepository     sync.Once
)

func NewSlotPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.SlotRepository {
	onceSlotPostgresRepository.Do(func() {
		instance := &slotPostgresRepository{
			DB:  db,
			Log: logger,
		}
		slotPostgresRepositoryInstance = instance
	})
	return slotPostgresRepositoryInstance
}

func (repo *slotPostgresRepository) Create(ctx context.Context, slot *models.Slot) (*models.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("slotPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingSlotStartKey, slot.StartAt),
		zap.Time(constvars.LoggingSlotEndKey, slot.EndAt),
	)

	created := *slot
	err := repo.DB.QueryRowContext(ctx, queries.InsertSlot, slot.StartAt.UTC(), slot.EndAt.UTC(), slot.Capacity).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if utils.PostgresErrorCode(err) == constvars.PostgresUniqueViolation {
			repo.Log.Warn("slotPostgresRepository.Create duplicate slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Time(constvars.LoggingSlotStartKey, slot.StartAt),
			)
			return nil, exceptions.ErrSlotDuplicate(err)
		}
		repo.Log.Error("slotPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSlotCreate(err)
	}

	repo.Log.Info("slotPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSlotIDKey, created.ID),
	)
	return &created, nil
}

// Delete reports whether a row was removed. A slot that still has a booking
// is refused by the foreign key and surfaces as a conflict.
func (repo *slotPostgresRepository) Delete(ctx context.Context, slotID int64) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("slotPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSlotIDKey, slotID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.DeleteSlot, slotID)
	if err != nil {
		if utils.PostgresErrorCode(err) == constvars.PostgresForeignKeyViolation {
			repo.Log.Warn("slotPostgresRepository.Delete slot has a booking",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingSlotIDKey, slotID),
			)
			return false, exceptions.ErrSlotHasBooking(err)
		}
		repo.Log.Error("slotPostgresRepository.Delete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		repo.Log.Error("slotPostgresRepository.Delete error reading affected rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}

	repo.Log.Info("slotPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSlotIDKey, slotID),
		zap.Int64(constvars.LoggingCountKey, affected),
	)
	return affected > 0, nil
}

func (repo *slotPostgresRepository) FindByStart(ctx context.Context, startAt time.Time) (*models.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("slotPostgresRepository.FindByStart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingSlotStartKey, startAt),
	)

	var slot models.Slot
	err := repo.DB.QueryRowContext(ctx, queries.GetSlotByStart, startAt.UTC()).
		Scan(&slot.ID, &slot.StartAt, &slot.EndAt, &slot.Capacity, &slot.CreatedAt)
	if err == sql.ErrNoRows {
		repo.Log.Warn("slotPostgresRepository.FindByStart no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Time(constvars.LoggingSlotStartKey, startAt),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("slotPostgresRepository.FindByStart error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("slotPostgresRepository.FindByStart succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSlotIDKey, slot.ID),
	)
	return &slot, nil
}

func (repo *slotPostgresRepository) FindAvailable(ctx context.Context, from, to, now time.Time) ([]models.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("slotPostgresRepository.FindAvailable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingRangeFromKey, from),
		zap.Time(constvars.LoggingRangeToKey, to),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetAvailableSlots, from.UTC(), to.UTC(), now.UTC())
	if err != nil {
		repo.Log.Error("slotPostgresRepository.FindAvailable error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	slots := make([]models.Slot, 0)
	for rows.Next() {
		var slot models.Slot
		if err := rows.Scan(&slot.ID, &slot.StartAt, &slot.EndAt, &slot.Capacity, &slot.CreatedAt); err != nil {
			repo.Log.Error("slotPostgresRepository.FindAvailable error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("slotPostgresRepository.FindAvailable rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	repo.Log.Info("slotPostgresRepository.FindAvailable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(slots)),
	)
	return slots, nil
}

func (repo *slotPostgresRepository) FindAllWithBookings(ctx context.Context, from, to time.Time) ([]models.SlotWithBooking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("slotPostgresRepository.FindAllWithBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingRangeFromKey, from),
		zap.Time(constvars.LoggingRangeToKey, to),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetSlotsWithBookings, from.UTC(), to.UTC())
	if err != nil {
		repo.Log.Error("slotPostgresRepository.FindAllWithBookings error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	result := make([]models.SlotWithBooking, 0)
	for rows.Next() {
		var (
			item             models.SlotWithBooking
			bookingID        sql.NullInt64
			bookingStatus    sql.NullString
			clientName       sql.NullString
			clientEmail      sql.NullString
			clientPhone      sql.NullString
			bookingCreatedAt sql.NullTime
		)
		err := rows.Scan(
			&item.ID, &item.StartAt, &item.EndAt, &item.Capacity, &item.CreatedAt,
			&bookingID, &bookingStatus, &clientName, &clientEmail, &clientPhone, &bookingCreatedAt,
		)
		if err != nil {
			repo.Log.Error("slotPostgresRepository.FindAllWithBookings error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		if bookingID.Valid {
			item.Booking = &models.Booking{
				ID:          bookingID.Int64,
				SlotID:      item.ID,
				Status:      bookingStatus.String,
				ClientName:  nullableString(clientName),
				ClientEmail: nullableString(clientEmail),
				ClientPhone: nullableString(clientPhone),
				CreatedAt:   bookingCreatedAt.Time,
			}
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("slotPostgresRepository.FindAllWithBookings rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	repo.Log.Info("slotPostgresRepository.FindAllWithBookings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (repo *slotPostgresRepository) DeletePastUnbooked(ctx context.Context, cutoff time.Time) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("slotPostgresRepository.DeletePastUnbooked called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingCutoffKey, cutoff),
	)

	result, err := repo.DB.ExecContext(ctx, queries.DeletePastUnbookedSlots, cutoff.UTC())
	if err != nil {
		repo.Log.Error("slotPostgresRepository.DeletePastUnbooked error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBDeleteData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrPostgresDBDeleteData(err)
	}

	repo.Log.Info("slotPostgresRepository.DeletePastUnbooked succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, affected),
	)
	return affected, nil
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}
