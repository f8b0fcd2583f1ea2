package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HLTRK_SVC_"
)

const (
	ResourceRecords   = "records"
	ResourcePatients  = "patients"
	ResourceDoctors   = "doctors"
	ResourceNutrition = "nutrition"
	ResourceChats     = "chats"
)

const (
	RecordSourcePDF    = "pdf"
	RecordSourceManual = "manual"
)

const (
	ParticipantTypeDoctor  = "doctor"
	ParticipantTypePatient = "patient"

	ChatMessageStatusSent = "sent"
)

const (
	EventLabRecordCreated   = "lab_record.created"
	EventLabRecordCommented = "lab_record.commented"
	EventChatMessageSent    = "chat_message.sent"
)

const (
	UploadQuotaLimiterGroup  = "lab-report-upload"
	UploadQuotaWindowSeconds = 24 * 60 * 60
)

const (
	ReportFileExtension = ".pdf"
	ReportDateLayout    = "2006-01-02"
)
