package locker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

var errLockHeldElsewhere = errors.New("lock is held by another owner")

// lockService hands out Redis leases keyed by a random token. Only the token
// holder may extend or release a lease.
type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = &lockService{
			redisRepo: repo,
			Log:       logger,
		}
	})
	return lockerServiceInstance
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	fields := s.fields(ctx, key)

	token := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, token, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error from redisRepo.TrySetNX", append(fields, zap.Error(err))...)
		return false, "", err
	}
	if !acquired {
		s.Log.Debug("lockService.TryLock lease taken by another owner", fields...)
		return false, "", nil
	}

	s.Log.Info("lockService.TryLock lease acquired", append(fields,
		zap.String(constvars.LoggingLockValueKey, token),
		zap.Duration(constvars.LoggingLockExpirationKey, expiration),
	)...)
	return true, token, nil
}

// Unlock is a no-op when the lease already expired.
func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	fields := s.fields(ctx, key)

	holder, err := s.holder(ctx, key)
	if err != nil {
		s.Log.Error("lockService.Unlock error reading lease", append(fields, zap.Error(err))...)
		return err
	}
	switch holder {
	case "":
		return nil
	case lockValue:
	default:
		err := exceptions.ErrRedisUnlock(errLockHeldElsewhere)
		s.Log.Warn("lockService.Unlock refused", append(fields, zap.String(constvars.LoggingLockStoredValueKey, holder))...)
		return err
	}

	if err := s.redisRepo.Delete(ctx, key); err != nil {
		s.Log.Error("lockService.Unlock error from redisRepo.Delete", append(fields, zap.Error(err))...)
		return err
	}
	s.Log.Info("lockService.Unlock lease released", fields...)
	return nil
}

func (s *lockService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	holder, err := s.holder(ctx, key)
	if err != nil {
		return err
	}
	if holder != lockValue {
		return exceptions.ErrRedisUnlock(fmt.Errorf("lease %s lost: %w", key, errLockHeldElsewhere))
	}

	if err := s.redisRepo.Expire(ctx, key, expiration); err != nil {
		s.Log.Error("lockService.Refresh error from redisRepo.Expire", append(s.fields(ctx, key), zap.Error(err))...)
		return err
	}
	return nil
}

// holder returns the token currently stored under key, or "" when no lease exists.
func (s *lockService) holder(ctx context.Context, key string) (string, error) {
	raw, err := s.redisRepo.Get(ctx, key)
	if err != nil || raw == "" {
		return "", err
	}

	var token string
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		return raw, nil
	}
	return token, nil
}

func (s *lockService) fields(ctx context.Context, key string) []zap.Field {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	}
}
