package middlewares

import (
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/utils"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimiter limits every client IP to MaxRequests per second.
func (m *Middlewares) GlobalRateLimiter() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(clientIP(r)))
		}),
	)
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
