package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/realtime-config/internal/platform/httpclient"
)

// maxRequestIDLen caps how much of a caller-supplied X-Request-ID is kept.
const maxRequestIDLen = 128

// RequestIDFromContext returns the request ID stored by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return httpclient.RequestIDFromContext(ctx)
}

// RequestID returns middleware that reuses the caller's X-Request-ID or
// generates a UUID when none is sent. The ID is echoed in the response
// header and stored in the context, where the gateway client picks it up
// for outbound calls.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpclient.RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}
			w.Header().Set(httpclient.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(httpclient.WithRequestID(r.Context(), id)))
		})
	}
}
