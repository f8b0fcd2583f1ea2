package ratelimiter

import (
	"context"
	"fmt"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter kept in Redis, keyed by group,
// resource and window number. Keys expire one second after their window.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) contracts.QuotaLimiter {
	return &ResourceLimiter{redis: redis, log: log}
}

// ApplyResourceLimiter reports Allowed=false with the seconds left until the
// next window once MaxQuota is exceeded. A non-positive MaxQuota disables the limit.
func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *contracts.QuotaLimiterInput) (*contracts.QuotaLimiterOutput, error) {
	if in == nil {
		return &contracts.QuotaLimiterOutput{Allowed: false}, fmt.Errorf("nil input")
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	windowSec := in.WindowDurationSec
	maxQuota := in.MaxQuota
	if windowSec <= 0 {
		windowSec = 60
	}
	if maxQuota <= 0 {
		return &contracts.QuotaLimiterOutput{Allowed: true}, nil
	}

	if resource == "" || group == "" {
		return &contracts.QuotaLimiterOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	newCount, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err))
		return &contracts.QuotaLimiterOutput{Allowed: false}, err
	}

	if newCount > maxQuota {
		nextWindowStart := (windowID + 1) * int64(windowSec)
		retryAfter := int(nextWindowStart-now.Unix()) + 1
		return &contracts.QuotaLimiterOutput{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}

	return &contracts.QuotaLimiterOutput{Allowed: true}, nil
}
