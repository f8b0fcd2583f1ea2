package controllers

import (
	"context"
	"errors"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/labreport"
	"healthtrack-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestTimeout(seconds int) time.Duration {
	if seconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(seconds) * time.Second
}

func reportTypeFromURL(r *http.Request) (labreport.ReportType, error) {
	raw := chi.URLParam(r, constvars.URLParamReportType)
	reportType, ok := labreport.ParseReportType(raw)
	if !ok {
		return "", exceptions.ErrUnknownReportType(raw)
	}
	return reportType, nil
}

// writeUsecaseError reports an expired request context as a deadline error
// whatever the usecase wrapped it in.
func writeUsecaseError(ctx context.Context, log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
