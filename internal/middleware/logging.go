package middleware

import (
	"net/http"
	"time"

	"github.com/avstanoeva/movienotes/internal/logger"
)

// responseWriter records the status code and body size written by the
// wrapped handler so the logging middleware can report them.
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Logging emits one structured log line per request with the URI, method,
// final status, duration, and response size.
func Logging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			start := time.Now()
			uri := r.RequestURI
			method := r.Method

			lw := &responseWriter{ResponseWriter: w}

			next.ServeHTTP(lw, r)

			log.Info().
				Str("uri", uri).
				Str("method", method).
				Int("status", lw.status).
				Dur("duration", time.Since(start)).
				Int("size", lw.size).
				Send()
		})
	}
}
