package middlewares

import (
	"fmt"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler turns a handler panic into the standard 500 error body.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			m.Log.Error("ErrorHandler recovered from panic",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
				zap.Stack("stacktrace"),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
		}()
		next.ServeHTTP(w, r)
	})
}
