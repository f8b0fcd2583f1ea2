package routers

import (
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/delivery/http/controllers"
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

// The upload route sets its own body limit from the report file size.
func attachLabRecordRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, labRecordController *controllers.LabRecordController) {
	uploadLimiter := newUploadRateLimiter(internalConfig, middlewares)
	router.With(uploadLimiter.Limit).Post("/{report_type}/upload", labRecordController.UploadReport)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.BodyLimit)
		r.Post("/{report_type}", labRecordController.CreateManualRecord)
		r.Get("/{report_type}/{record_id}", labRecordController.FindRecordByID)
		r.Get("/{report_type}/{record_id}/file", labRecordController.GetReportFileURL)
		r.Put("/{report_type}/{record_id}/comment", labRecordController.AttachDoctorComment)
	})
}

func attachPatientRecordRoutes(router chi.Router, labRecordController *controllers.LabRecordController) {
	router.Get("/{patient_id}/records/{report_type}", labRecordController.FindRecordsByPatientID)
}

func attachDoctorRecordRoutes(router chi.Router, labRecordController *controllers.LabRecordController) {
	router.Get("/{doctor_id}/records/{report_type}", labRecordController.FindRecordsByDoctorID)
}

func newUploadRateLimiter(internalConfig *config.InternalConfig, mw *middlewares.Middlewares) *middlewares.RateLimiter {
	perMinute := internalConfig.Upload.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	burst := internalConfig.Upload.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}
	blockTime := time.Duration(internalConfig.Upload.RateLimitBlockTimeSeconds) * time.Second
	return middlewares.NewRateLimiter(mw.Log, burst, time.Minute/time.Duration(perMinute), blockTime)
}
