package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"numeric":     "must be a number",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"lt":          "must be less than %s",
	"lte":         "must be less than or equal to %s",
	"dive":        "contains an invalid entry",
	"participant": "must be either 'doctor' or 'patient'",
	"nefield":     "must be different from %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"nefield": true,
}

// Error codes exposed to clients, one per failure class.
const (
	ErrCodeMissingInput         = "MISSING_INPUT"
	ErrCodeUnreadableDocument   = "UNREADABLE_DOCUMENT"
	ErrCodeIncompleteExtraction = "INCOMPLETE_EXTRACTION"
	ErrCodeRecordNotFound       = "RECORD_NOT_FOUND"
	ErrCodeStoreUnavailable     = "STORE_UNAVAILABLE"
	ErrCodeInvalidInput         = "INVALID_INPUT"
	ErrCodeUploadQuotaExceeded  = "UPLOAD_QUOTA_EXCEEDED"
	ErrCodeDeadlineExceeded     = "DEADLINE_EXCEEDED"
	ErrCodeRateLimited          = "RATE_LIMITED"
	ErrCodeFileTooLarge         = "FILE_TOO_LARGE"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientMissingInput                  = "required input is missing: %s"
	ErrClientNoFileUploaded                = "no file uploaded"
	ErrClientUnreadableDocument            = "the uploaded file could not be read as a PDF document"
	ErrClientIncompleteExtraction          = "could not extract %s data from the document, please enter the values manually"
	ErrClientIncompleteManualEntry         = "the submitted %s values are incomplete or invalid"
	ErrClientRecordNotFound                = "record not found"
	ErrClientNoRecordsFound                = "no records found"
	ErrClientUnknownReportType             = "unknown report type"
	ErrClientStoreUnavailable              = "the record store is unavailable, please try again later"
	ErrClientUploadQuotaExceeded           = "upload limit reached, please try again later"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientFileTooLarge                  = "the uploaded file exceeds the %d MB limit"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevMissingInput             = "missing required input %s"
	ErrDevMissingRequestID         = "request id not found in context"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotReadUploadedFile   = "cannot read uploaded file"
	ErrDevUnknownReportType        = "unknown report type %q"
	ErrDevUnreadableDocument       = "document cannot be parsed as PDF"
	ErrDevIncompleteExtraction     = "required fields missing or invalid for %s: missing=%v invalid=%v"
	ErrDevRecordNotFound           = "%s record %q not found"
	ErrDevNoRecordsFound           = "no %s records found for %s %q"
	ErrDevServerDeadlineExceeded   = "deadline exceeded"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevUploadQuotaExceeded      = "upload quota exceeded for patient %q, retry after %ds"
	ErrDevTooManyRequests          = "client %s is rate limited"
	ErrDevFileTooLarge             = "request body exceeds %d bytes"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"

	// Redis messages
	ErrDevRedisIncrementValue = "failed to increment value in redis"

	// Minio messages
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToRemoveObject  = "failed to remove object from bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to create presigned url for object in bucket %s"
	ErrDevMinioReportFileNotArchived = "record %q has no archived report file"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
