package middlewares

import (
	"context"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/utils"
	"net/http"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const maxClientRequestIDLength = 64

// responseRecorder captures what the handler wrote for the access log.
type responseRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(data []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(data)
	rec.bytesWritten += n
	return n, err
}

// Logging writes one access log line per request. The endpoint is the matched
// route pattern so that ids in the path do not explode log cardinality.
func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		endpoint := r.URL.Path
		if routeContext := chi.RouteContext(r.Context()); routeContext != nil && routeContext.RoutePattern() != "" {
			endpoint = routeContext.RoutePattern()
		}

		level := zapcore.InfoLevel
		switch {
		case rec.statusCode >= http.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case rec.statusCode >= http.StatusBadRequest:
			level = zapcore.WarnLevel
		}

		m.Log.Check(level, "API request completed").Write(
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
			zap.Int(constvars.LoggingResponseBytesKey, rec.bytesWritten),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
	})
}

// RequestIDMiddleware reuses a well-formed X-Request-ID from the client and
// generates one otherwise. The id is echoed back in the response header.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := validClientRequestID(requestID)
		if !isClientRequestID {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validClientRequestID(requestID string) bool {
	if requestID == "" || len(requestID) > maxClientRequestIDLength {
		return false
	}
	for _, r := range requestID {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
