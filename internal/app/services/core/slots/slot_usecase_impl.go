package slots

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/dto/responses"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotRepository  contracts.SlotRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Location        *time.Location
	Log             *zap.Logger
	now             func() time.Time
}

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
	slotUsecaseError    error
)

func NewSlotUsecase(
	slotRepository contracts.SlotRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.SlotUsecase, error) {
	onceSlotUsecase.Do(func() {
		instance, err := newSlotUsecase(slotRepository, redisRepository, internalConfig, logger)
		if err != nil {
			slotUsecaseError = err
			return
		}
		slotUsecaseInstance = instance
	})
	return slotUsecaseInstance, slotUsecaseError
}

func newSlotUsecase(
	slotRepository contracts.SlotRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (*slotUsecase, error) {
	location, err := internalConfig.Location()
	if err != nil {
		return nil, err
	}
	return &slotUsecase{
		SlotRepository:  slotRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Location:        location,
		Log:             logger,
		now:             time.Now,
	}, nil
}

func (uc *slotUsecase) CreateSlot(ctx context.Context, request *requests.CreateSlot) (*responses.SlotCreated, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.CreateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request.Sanitize()
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Warn("slotUsecase.CreateSlot validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err, constvars.ErrClientSlotInputInvalid)
	}

	startAt, err := utils.ParseLocalDateTime(request.Date, request.Time, uc.Location)
	if err != nil {
		uc.Log.Warn("slotUsecase.CreateSlot invalid date or time",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidDateOrTime(err)
	}

	slot := &models.Slot{
		StartAt:  startAt,
		EndAt:    startAt.Add(time.Duration(request.Duration.Int()) * time.Minute),
		Capacity: constvars.SlotDefaultCapacity,
	}
	created, err := uc.SlotRepository.Create(ctx, slot)
	if err != nil {
		uc.Log.Error("slotUsecase.CreateSlot error from SlotRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.invalidate(ctx, "slotUsecase.CreateSlot")

	uc.Log.Info("slotUsecase.CreateSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSlotIDKey, created.ID),
	)
	return &responses.SlotCreated{
		OK:   true,
		Slot: created.ConvertIntoResponse(uc.Location),
	}, nil
}

func (uc *slotUsecase) DeleteSlot(ctx context.Context, slotID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSlotIDKey, slotID),
	)

	found, err := uc.SlotRepository.Delete(ctx, slotID)
	if err != nil {
		uc.Log.Error("slotUsecase.DeleteSlot error from SlotRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !found {
		return exceptions.ErrSlotNotFound(fmt.Errorf("slot %d does not exist", slotID))
	}

	uc.invalidate(ctx, "slotUsecase.DeleteSlot")

	uc.Log.Info("slotUsecase.DeleteSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSlotIDKey, slotID),
	)
	return nil
}

func (uc *slotUsecase) ListSlots(ctx context.Context, request *requests.SlotRange) (*responses.AdminSlotList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.ListSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	window, err := uc.resolveRange(request)
	if err != nil {
		return nil, err
	}

	slots, err := uc.SlotRepository.FindAllWithBookings(ctx, window.From, window.To)
	if err != nil {
		uc.Log.Error("slotUsecase.ListSlots error from SlotRepository.FindAllWithBookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.AdminSlotList{OK: true, Slots: make([]responses.AdminSlot, len(slots))}
	for i, slot := range slots {
		response.Slots[i] = slot.ConvertIntoResponse(uc.Location)
	}

	uc.Log.Info("slotUsecase.ListSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response.Slots)),
	)
	return response, nil
}

func (uc *slotUsecase) ListAvailable(ctx context.Context, request *requests.SlotRange) (*responses.AvailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.ListAvailable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	window, err := uc.resolveRange(request)
	if err != nil {
		return nil, err
	}

	cacheKey, cached := uc.readAvailabilityCache(ctx, window)
	if cached != nil {
		uc.Log.Info("slotUsecase.ListAvailable served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Bool(constvars.LoggingCacheHitKey, true),
		)
		return cached, nil
	}

	slots, err := uc.SlotRepository.FindAvailable(ctx, window.From, window.To, uc.now())
	if err != nil {
		uc.Log.Error("slotUsecase.ListAvailable error from SlotRepository.FindAvailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.AvailableSlots{Slots: groupByLocalDate(slots, uc.Location)}

	if cacheKey != "" {
		err = uc.RedisRepository.Set(ctx, cacheKey, response.Slots, uc.InternalConfig.AvailabilityCacheTTL())
		if err != nil {
			uc.Log.Warn("slotUsecase.ListAvailable error caching availability",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, cacheKey),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("slotUsecase.ListAvailable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(slots)),
		zap.Bool(constvars.LoggingCacheHitKey, false),
	)
	return response, nil
}

func (uc *slotUsecase) PurgePastSlots(ctx context.Context, cutoff time.Time) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.PurgePastSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingCutoffKey, cutoff),
	)

	count, err := uc.SlotRepository.DeletePastUnbooked(ctx, cutoff)
	if err != nil {
		uc.Log.Error("slotUsecase.PurgePastSlots error from SlotRepository.DeletePastUnbooked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}
	if count > 0 {
		uc.invalidate(ctx, "slotUsecase.PurgePastSlots")
	}

	uc.Log.Info("slotUsecase.PurgePastSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, count),
	)
	return count, nil
}

// InvalidateAvailability bumps the cache version so every cached range is
// ignored from now on; old entries simply expire.
func (uc *slotUsecase) InvalidateAvailability(ctx context.Context) error {
	_, err := uc.RedisRepository.Increment(ctx, constvars.RedisKeyAvailabilityVersion)
	return err
}

func (uc *slotUsecase) invalidate(ctx context.Context, caller string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := uc.InvalidateAvailability(ctx); err != nil {
		uc.Log.Warn(caller+" error invalidating availability cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// readAvailabilityCache returns the key to cache under (empty when Redis is
// unusable) and the cached response on a hit.
func (uc *slotUsecase) readAvailabilityCache(ctx context.Context, window dateRange) (string, *responses.AvailableSlots) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	rawVersion, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyAvailabilityVersion)
	if err != nil {
		uc.Log.Warn("slotUsecase.readAvailabilityCache error reading cache version",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", nil
	}
	var version int64
	if rawVersion != "" {
		version, err = strconv.ParseInt(rawVersion, 10, 64)
		if err != nil {
			return "", nil
		}
	}

	key := fmt.Sprintf(constvars.RedisKeyAvailabilityFormat, version, window.FromLabel, window.ToLabel)
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil || raw == "" {
		return key, nil
	}

	var slots map[string][]string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		uc.Log.Warn("slotUsecase.readAvailabilityCache dropping unreadable entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return key, nil
	}
	if slots == nil {
		slots = map[string][]string{}
	}
	return key, &responses.AvailableSlots{Slots: slots}
}

// groupByLocalDate turns slots into {"YYYY-MM-DD": ["HH:mm", ...]} with each
// day sorted and free of duplicate start times.
func groupByLocalDate(slots []models.Slot, loc *time.Location) map[string][]string {
	grouped := make(map[string][]string)
	seen := make(map[string]bool)
	for _, slot := range slots {
		date := utils.FormatLocalDate(slot.StartAt, loc)
		clock := utils.FormatLocalClock(slot.StartAt, loc)
		if seen[date+" "+clock] {
			continue
		}
		seen[date+" "+clock] = true
		grouped[date] = append(grouped[date], clock)
	}
	for date := range grouped {
		sort.Strings(grouped[date])
	}
	return grouped
}
