package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
}
