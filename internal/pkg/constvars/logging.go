package constvars

const (
	LoggingRequestIDKey = "request_id"
	LoggingErrorTypeKey = "error_type"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingOperationKey  = "operation"
	LoggingResourceKey   = "resource"

	LoggingResponseCountKey = "response_count"
	LoggingResponseBytesKey = "response_bytes"

	LoggingReportTypeKey    = "report_type"
	LoggingRecordIDKey      = "record_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingFileNameKey      = "file_name"
	LoggingFileSizeKey      = "file_size"
	LoggingObjectNameKey    = "object_name"
	LoggingBucketNameKey    = "bucket_name"
	LoggingQueueNameKey     = "queue_name"
	LoggingEventTypeKey     = "event_type"
	LoggingRedisKey         = "redis_key"
	LoggingTextLengthKey    = "text_length"
	LoggingPageCountKey     = "page_count"
	LoggingMissingFieldsKey = "missing_fields"
	LoggingInvalidFieldsKey = "invalid_fields"
	LoggingParticipantsKey  = "participants"
	LoggingMealCountKey     = "meal_count"
)
