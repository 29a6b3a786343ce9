package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-passkey-vault/internal/logger"
)

// withLogging writes one access-log line per request with method, URI,
// status, byte count and duration. It reads the request-scoped logger that
// withTraceID put into the context, so lines carry the trace ID.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
