// Package middleware holds the HTTP middleware shared by the movie and
// note servers: trace-ID propagation, request logging, and JWT
// authentication.
package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avstanoeva/movienotes/internal/logger"
)

const traceIDHeader = "X-Trace-ID"

// TraceID attaches a request-scoped child of root to the request context,
// tagged with a trace id taken from the X-Trace-ID header or freshly
// generated. The id is echoed back on the response.
func TraceID(root *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			traceID := r.Header.Get(traceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			l := root.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("trace_id", traceID)
			})
			r = r.WithContext(l.WithContext(ctx))

			w.Header().Set(traceIDHeader, traceID)
			next.ServeHTTP(w, r)
		})
	}
}
