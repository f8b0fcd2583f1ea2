package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationPDF  = "application/pdf"
)

const (
	StatusOK                    = 200
	StatusCreated               = 201
	StatusBadRequest            = 400
	StatusNotFound              = 404
	StatusRequestEntityTooLarge = 413
	StatusTooManyRequests       = 429
	StatusInternalServerError   = 500
	StatusGatewayTimeout        = 504
)

const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRetryAfter    = "Retry-After"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXCSRFToken    = "X-CSRF-Token"
	HeaderLink          = "Link"
)
