package exceptions

import (
	"fmt"
	"healthtrack-service/internal/pkg/constvars"
)

var (
	// Request
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, validationErrorCode(err), FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeInvalidInput, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeInvalidInput, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotReadUploadedFile = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeInvalidInput, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotReadUploadedFile)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrCodeDeadlineExceeded, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
	ErrUploadQuotaExceeded = func(patientID string, retryAfterSecs int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrCodeUploadQuotaExceeded, constvars.ErrClientUploadQuotaExceeded, fmt.Sprintf(constvars.ErrDevUploadQuotaExceeded, patientID, retryAfterSecs))
	}
	ErrTooManyRequests = func(clientIP string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrCodeRateLimited, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, clientIP))
	}
	ErrFileTooLarge = func(err error, maxSizeInMB int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooLarge, constvars.ErrCodeFileTooLarge, fmt.Sprintf(constvars.ErrClientFileTooLarge, maxSizeInMB), fmt.Sprintf(constvars.ErrDevFileTooLarge, maxSizeInMB*1024*1024))
	}

	// Lab report pipeline
	ErrMissingInput = func(inputName string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeMissingInput, fmt.Sprintf(constvars.ErrClientMissingInput, inputName), fmt.Sprintf(constvars.ErrDevMissingInput, inputName))
	}
	ErrNoFileUploaded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeMissingInput, constvars.ErrClientNoFileUploaded, fmt.Sprintf(constvars.ErrDevMissingInput, constvars.FormFieldFile))
	}
	ErrUnknownReportType = func(reportType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeInvalidInput, constvars.ErrClientUnknownReportType, fmt.Sprintf(constvars.ErrDevUnknownReportType, reportType))
	}
	ErrUnreadableDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeUnreadableDocument, constvars.ErrClientUnreadableDocument, constvars.ErrDevUnreadableDocument)
	}
	ErrIncompleteExtraction = func(reportType string, missing, invalid []string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeIncompleteExtraction, fmt.Sprintf(constvars.ErrClientIncompleteExtraction, reportType), fmt.Sprintf(constvars.ErrDevIncompleteExtraction, reportType, missing, invalid))
	}
	ErrIncompleteManualEntry = func(reportType string, missing, invalid []string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeIncompleteExtraction, fmt.Sprintf(constvars.ErrClientIncompleteManualEntry, reportType), fmt.Sprintf(constvars.ErrDevIncompleteExtraction, reportType, missing, invalid))
	}
	ErrRecordNotFound = func(reportType, recordID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrCodeRecordNotFound, constvars.ErrClientRecordNotFound, fmt.Sprintf(constvars.ErrDevRecordNotFound, reportType, recordID))
	}
	ErrNoRecordsFound = func(reportType, ownerKind, ownerID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrCodeRecordNotFound, constvars.ErrClientNoRecordsFound, fmt.Sprintf(constvars.ErrDevNoRecordsFound, reportType, ownerKind, ownerID))
	}
	ErrReportFileNotArchived = func(recordID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrCodeRecordNotFound, constvars.ErrClientRecordNotFound, fmt.Sprintf(constvars.ErrDevMinioReportFileNotArchived, recordID))
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeStoreUnavailable, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeStoreUnavailable, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeStoreUnavailable, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeStoreUnavailable, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToInsertDocument)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeStoreUnavailable, constvars.ErrClientStoreUnavailable, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioRemoveObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeStoreUnavailable, constvars.ErrClientStoreUnavailable, fmt.Sprintf(constvars.ErrDevMinioFailedToRemoveObject, bucketName))
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeStoreUnavailable, constvars.ErrClientStoreUnavailable, fmt.Sprintf(constvars.ErrDevMinioFailedToPresignObject, bucketName))
	}

	// Redis
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementValue)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
)

// HasCode reports whether err is a CustomError carrying the given code.
func HasCode(err error, code string) bool {
	customErr, ok := AsCustomError(err)
	return ok && customErr.Code == code
}
