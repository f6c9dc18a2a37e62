package middleware

import (
	"net/http"

	wrap "github.com/Dastan7k/gig-track-system/pkg/logger/wrapper"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request id to the context and echoes it back in the
// response headers. An incoming X-Request-ID is trusted and propagated so
// ids stay stable across service hops.
func (app *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)

		ctx := wrap.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
