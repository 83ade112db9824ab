package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Increment(ctx context.Context, key string) (int64, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	Expire(ctx context.Context, key string, exp time.Duration) error
}
