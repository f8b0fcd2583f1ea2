package labrecords

import (
	"context"
	"errors"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/labreport"
	"healthtrack-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

const archiveCleanupTimeout = 10 * time.Second

type labRecordUsecase struct {
	LabRecordRepository contracts.LabRecordRepository
	TextExtractor       contracts.TextExtractor
	Storage             contracts.Storage
	QuotaLimiter        contracts.QuotaLimiter
	EventPublisher      contracts.EventPublisher
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
	now                 func() time.Time
}

func NewLabRecordUsecase(
	labRecordRepository contracts.LabRecordRepository,
	textExtractor contracts.TextExtractor,
	storage contracts.Storage,
	quotaLimiter contracts.QuotaLimiter,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.LabRecordUsecase {
	return &labRecordUsecase{
		LabRecordRepository: labRecordRepository,
		TextExtractor:       textExtractor,
		Storage:             storage,
		QuotaLimiter:        quotaLimiter,
		EventPublisher:      eventPublisher,
		InternalConfig:      internalConfig,
		Log:                 logger,
		now:                 time.Now,
	}
}

// IngestReportDocument turns an uploaded PDF into a stored record. Nothing is
// persisted unless every required field of the report type was extracted.
func (uc *labRecordUsecase) IngestReportDocument(ctx context.Context, request *requests.UploadLabReport) (*responses.LabRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labRecordUsecase.IngestReportDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportTypeKey, request.ReportType.String()),
		zap.String(constvars.LoggingFileNameKey, request.FileName),
		zap.Int64(constvars.LoggingFileSizeKey, request.FileSize),
	)

	err := uc.checkOwners(request.ReportType, request.PatientID, request.DoctorID)
	if err != nil {
		uc.Log.Error("labRecordUsecase.IngestReportDocument invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(request.Document) == 0 {
		uc.Log.Error("labRecordUsecase.IngestReportDocument no document uploaded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrNoFileUploaded(nil)
	}

	err = uc.applyUploadQuota(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}

	var text string
	err = utils.TimeOperation(ctx, uc.Log, "extract_report_text", func() error {
		var extractErr error
		text, extractErr = uc.TextExtractor.ExtractText(ctx, request.Document)
		return extractErr
	})
	if err != nil {
		return nil, err
	}
	uc.Log.Info("labRecordUsecase.IngestReportDocument text extracted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTextLengthKey, len(text)),
	)

	parser, err := labreport.ParserFor(request.ReportType)
	if err != nil {
		return nil, exceptions.ErrUnknownReportType(request.ReportType.String())
	}

	candidate, err := labreport.Normalize(request.ReportType, parser.Parse(text), uc.now())
	if err != nil {
		uc.Log.Error("labRecordUsecase.IngestReportDocument extraction incomplete",
			append(validationLogFields(err),
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)...,
		)
		return nil, incompleteError(err, exceptions.ErrIncompleteExtraction)
	}

	record := models.NewLabRecordFromCandidate(candidate, request.PatientID, request.DoctorID, constvars.RecordSourcePDF)

	objectName := utils.GenerateReportObjectName(request.ReportType.Slug(), request.PatientID)
	_, err = uc.Storage.UploadObject(ctx, uc.InternalConfig.Minio.BucketName, objectName, constvars.MIMEApplicationPDF, request.Document)
	if err != nil {
		uc.Log.Error("labRecordUsecase.IngestReportDocument error archiving document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, uc.InternalConfig.Minio.BucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}
	record.FileObjectName = objectName

	response, err := uc.persist(ctx, record)
	if err != nil {
		uc.discardArchivedDocument(ctx, objectName)
		return nil, err
	}
	return response, nil
}

// CreateManualRecord runs hand-entered values through the same validation as extracted ones.
func (uc *labRecordUsecase) CreateManualRecord(ctx context.Context, request *requests.CreateManualLabRecord) (*responses.LabRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labRecordUsecase.CreateManualRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportTypeKey, request.ReportType.String()),
	)

	err := uc.checkOwners(request.ReportType, request.PatientID, request.DoctorID)
	if err != nil {
		uc.Log.Error("labRecordUsecase.CreateManualRecord invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	raw := labreport.FieldMap{}
	for name, value := range request.Fields {
		raw[name] = value
	}
	if request.Date != "" {
		raw[labreport.FieldDate] = request.Date
	}

	candidate, err := labreport.Normalize(request.ReportType, raw, uc.now())
	if err != nil {
		uc.Log.Error("labRecordUsecase.CreateManualRecord values incomplete",
			append(validationLogFields(err),
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)...,
		)
		return nil, incompleteError(err, exceptions.ErrIncompleteManualEntry)
	}

	record := models.NewLabRecordFromCandidate(candidate, request.PatientID, request.DoctorID, constvars.RecordSourceManual)
	return uc.persist(ctx, record)
}

func (uc *labRecordUsecase) AttachDoctorComment(ctx context.Context, request *requests.AttachDoctorComment) (*responses.LabRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labRecordUsecase.AttachDoctorComment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportTypeKey, request.ReportType.String()),
		zap.String(constvars.LoggingRecordIDKey, request.RecordID),
	)

	if !request.ReportType.Valid() {
		return nil, exceptions.ErrUnknownReportType(request.ReportType.String())
	}
	if strings.TrimSpace(request.DoctorComment) == "" {
		return nil, exceptions.ErrMissingInput("doctorComment")
	}

	record, err := uc.LabRecordRepository.FindByID(ctx, request.ReportType, request.RecordID)
	if err != nil {
		uc.Log.Error("labRecordUsecase.AttachDoctorComment error fetching record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if record == nil {
		uc.Log.Error("labRecordUsecase.AttachDoctorComment record not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, request.RecordID),
		)
		return nil, exceptions.ErrRecordNotFound(request.ReportType.String(), request.RecordID)
	}

	err = uc.LabRecordRepository.UpdateDoctorComment(ctx, request.ReportType, request.RecordID, request.DoctorComment)
	if err != nil {
		uc.Log.Error("labRecordUsecase.AttachDoctorComment error updating record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	comment := request.DoctorComment
	record.DoctorComment = &comment
	record.Commented = true
	record.UpdatedAt = uc.now()

	response := record.ConvertIntoResponse()
	uc.publish(ctx, constvars.EventLabRecordCommented, response)
	utils.LogDomainEvent(ctx, uc.Log, constvars.EventLabRecordCommented,
		zap.String(constvars.LoggingRecordIDKey, request.RecordID),
		zap.String(constvars.LoggingReportTypeKey, request.ReportType.String()),
	)

	uc.Log.Info("labRecordUsecase.AttachDoctorComment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, request.RecordID),
	)
	return &response, nil
}

func (uc *labRecordUsecase) FindByID(ctx context.Context, reportType labreport.ReportType, recordID string) (*responses.LabRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labRecordUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportTypeKey, reportType.String()),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	record, err := uc.findRecord(ctx, reportType, recordID)
	if err != nil {
		return nil, err
	}

	response := record.ConvertIntoResponse()
	return &response, nil
}

func (uc *labRecordUsecase) FindByPatientID(ctx context.Context, request *requests.FindLabRecords) ([]responses.LabRecord, error) {
	return uc.findByOwner(ctx, request, constvars.ResourcePatients, uc.LabRecordRepository.FindByPatientID)
}

func (uc *labRecordUsecase) FindByDoctorID(ctx context.Context, request *requests.FindLabRecords) ([]responses.LabRecord, error) {
	return uc.findByOwner(ctx, request, constvars.ResourceDoctors, uc.LabRecordRepository.FindByDoctorID)
}

// GetReportFileURL presigns the archived document of a record created from a PDF.
func (uc *labRecordUsecase) GetReportFileURL(ctx context.Context, reportType labreport.ReportType, recordID string) (*responses.ReportFileURL, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labRecordUsecase.GetReportFileURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	record, err := uc.findRecord(ctx, reportType, recordID)
	if err != nil {
		return nil, err
	}
	if record.FileObjectName == "" {
		return nil, exceptions.ErrReportFileNotArchived(recordID)
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, record.FileObjectName, expiry)
	if err != nil {
		uc.Log.Error("labRecordUsecase.GetReportFileURL error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, record.FileObjectName),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.ReportFileURL{
		RecordID:  recordID,
		URL:       url,
		ExpiresAt: uc.now().Add(expiry),
	}, nil
}

func (uc *labRecordUsecase) findRecord(ctx context.Context, reportType labreport.ReportType, recordID string) (*models.LabRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !reportType.Valid() {
		return nil, exceptions.ErrUnknownReportType(reportType.String())
	}

	record, err := uc.LabRecordRepository.FindByID(ctx, reportType, recordID)
	if err != nil {
		uc.Log.Error("labRecordUsecase.findRecord error fetching record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(reportType.String(), recordID)
	}
	return record, nil
}

type ownerQuery func(ctx context.Context, reportType labreport.ReportType, ownerID string) ([]models.LabRecord, error)

func (uc *labRecordUsecase) findByOwner(ctx context.Context, request *requests.FindLabRecords, ownerKind string, query ownerQuery) ([]responses.LabRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labRecordUsecase.findByOwner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportTypeKey, request.ReportType.String()),
		zap.String(constvars.LoggingResourceKey, ownerKind),
	)

	if !request.ReportType.Valid() {
		return nil, exceptions.ErrUnknownReportType(request.ReportType.String())
	}
	if strings.TrimSpace(request.OwnerID) == "" {
		return nil, exceptions.ErrMissingInput(ownerKind)
	}

	records, err := query(ctx, request.ReportType, request.OwnerID)
	if err != nil {
		uc.Log.Error("labRecordUsecase.findByOwner error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(records) == 0 {
		return nil, exceptions.ErrNoRecordsFound(request.ReportType.String(), ownerKind, request.OwnerID)
	}

	response := make([]responses.LabRecord, len(records))
	for i, eachRecord := range records {
		response[i] = eachRecord.ConvertIntoResponse()
	}

	uc.Log.Info("labRecordUsecase.findByOwner succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *labRecordUsecase) persist(ctx context.Context, record *models.LabRecord) (*responses.LabRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	recordID, err := uc.LabRecordRepository.Create(ctx, record)
	if err != nil {
		uc.Log.Error("labRecordUsecase.persist error creating record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	record.ID = recordID

	response := record.ConvertIntoResponse()
	uc.publish(ctx, constvars.EventLabRecordCreated, response)

	utils.LogDomainEvent(ctx, uc.Log, constvars.EventLabRecordCreated,
		zap.String(constvars.LoggingRecordIDKey, recordID),
		zap.String(constvars.LoggingReportTypeKey, record.ReportType.String()),
		zap.String(constvars.LoggingPatientIDKey, record.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, record.DoctorID),
	)
	return &response, nil
}

// discardArchivedDocument removes a PDF whose record could not be stored. It
// runs even when the request context is already done.
func (uc *labRecordUsecase) discardArchivedDocument(ctx context.Context, objectName string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveCleanupTimeout)
	defer cancel()

	err := uc.Storage.RemoveObject(cleanupCtx, uc.InternalConfig.Minio.BucketName, objectName)
	if err != nil {
		uc.Log.Error("labRecordUsecase.discardArchivedDocument error removing object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, uc.InternalConfig.Minio.BucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return
	}
	uc.Log.Info("labRecordUsecase.discardArchivedDocument removed orphaned object",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
}

// publish never fails the caller; the record is already stored.
func (uc *labRecordUsecase) publish(ctx context.Context, eventType string, payload interface{}) {
	if uc.EventPublisher == nil {
		return
	}
	queueName := uc.InternalConfig.RabbitMQ.LabRecordEventsQueue
	err := uc.EventPublisher.Publish(ctx, queueName, eventType, payload)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("labRecordUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, queueName),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}

func (uc *labRecordUsecase) applyUploadQuota(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if uc.QuotaLimiter == nil {
		return nil
	}

	result, err := uc.QuotaLimiter.ApplyResourceLimiter(ctx, &contracts.QuotaLimiterInput{
		ResourceName:      patientID,
		LimiterGroupName:  constvars.UploadQuotaLimiterGroup,
		WindowDurationSec: constvars.UploadQuotaWindowSeconds,
		MaxQuota:          uc.InternalConfig.Upload.DailyQuotaPerPatient,
		NowUTC:            uc.now().UTC(),
	})
	if err != nil {
		uc.Log.Warn("labRecordUsecase.applyUploadQuota limiter unavailable, allowing upload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	if !result.Allowed {
		uc.Log.Warn("labRecordUsecase.applyUploadQuota quota exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return exceptions.ErrUploadQuotaExceeded(patientID, result.RetryAfterSecs).WithData(map[string]int{
			"retryAfterSeconds": result.RetryAfterSecs,
		})
	}
	return nil
}

func (uc *labRecordUsecase) checkOwners(reportType labreport.ReportType, patientID, doctorID string) error {
	if !reportType.Valid() {
		return exceptions.ErrUnknownReportType(reportType.String())
	}
	if strings.TrimSpace(patientID) == "" {
		return exceptions.ErrMissingInput(constvars.FormFieldPatientID)
	}
	if strings.TrimSpace(doctorID) == "" {
		return exceptions.ErrMissingInput(constvars.FormFieldDoctorID)
	}
	return nil
}

func incompleteError(err error, build func(reportType string, missing, invalid []string) *exceptions.CustomError) error {
	var validationErr *labreport.ValidationError
	if !errors.As(err, &validationErr) {
		return exceptions.ErrServerProcess(err)
	}
	reportType := validationErr.ReportType
	return build(reportType.String(), validationErr.Missing, validationErr.Invalid).WithData(responses.IncompleteExtraction{
		ReportType:     reportType.String(),
		RequiredFields: reportType.RequiredFields(),
		MissingFields:  validationErr.Missing,
		InvalidFields:  validationErr.Invalid,
		Partial:        validationErr.Partial,
	})
}

func validationLogFields(err error) []zap.Field {
	var validationErr *labreport.ValidationError
	if !errors.As(err, &validationErr) {
		return nil
	}
	return []zap.Field{
		zap.Strings(constvars.LoggingMissingFieldsKey, validationErr.Missing),
		zap.Strings(constvars.LoggingInvalidFieldsKey, validationErr.Invalid),
	}
}
