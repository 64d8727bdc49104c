package middleware

import (
	"context"
	"net/http"
	"time"
)

// NewRequestTimeout returns a middleware that gives every request context a
// deadline of d. Store calls inherit the context, so a stalled database turns
// into domain.ErrUnavailable instead of a hung request. It never writes a
// response itself; the handler owns the status.
func NewRequestTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
