package contracts

import (
	"context"
	"time"
)

type QuotaLimiterInput struct {
	ResourceName      string
	LimiterGroupName  string
	WindowDurationSec int
	MaxQuota          int
	NowUTC            time.Time
}

type QuotaLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

type QuotaLimiter interface {
	ApplyResourceLimiter(ctx context.Context, in *QuotaLimiterInput) (*QuotaLimiterOutput, error)
}
