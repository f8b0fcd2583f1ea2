package middlewares

import (
	"net/http"
)

// BodyLimit caps every request body at the configured size. Reads past the
// limit fail, which the JSON and multipart decoders surface as errors.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	maxBytes := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * 1024 * 1024
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next.ServeHTTP(w, r)
	})
}
