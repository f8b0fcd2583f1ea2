package utils

import (
	"context"
	"time"

	"healthtrack-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// TimeOperation runs fn and logs its outcome and duration under the request ID found in ctx.
func TimeOperation(ctx context.Context, logger *zap.Logger, operation string, fn func() error) error {
	requestID := GetRequestID(ctx)
	start := time.Now()

	err := fn()

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	}
	if err != nil {
		logger.Error("Operation failed", append(fields, zap.Error(err))...)
		return err
	}
	logger.Info("Operation completed", fields...)
	return nil
}

// LogDomainEvent records a state change that other services may also learn about through the broker.
func LogDomainEvent(ctx context.Context, logger *zap.Logger, eventType string, fields ...zap.Field) {
	logger.Info("Domain event recorded", append([]zap.Field{
		zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx)),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	}, fields...)...)
}
