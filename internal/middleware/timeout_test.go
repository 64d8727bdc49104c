package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/middleware"
)

// TestRequestTimeout_setsDeadline verifies that the downstream handler sees a
// context deadline no later than the configured timeout.
func TestRequestTimeout_setsDeadline(t *testing.T) {
	var deadline time.Time
	var ok bool
	h := middleware.NewRequestTimeout(2 * time.Second)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deadline, ok = r.Context().Deadline()
			w.WriteHeader(http.StatusOK)
		}),
	)

	before := time.Now()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trips", nil))

	require.True(t, ok, "expected a context deadline")
	assert.WithinDuration(t, before.Add(2*time.Second), deadline, time.Second)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestRequestTimeout_expiresContext verifies that a slow handler observes
// context cancellation once the deadline passes.
func TestRequestTimeout_expiresContext(t *testing.T) {
	var ctxErr error
	h := middleware.NewRequestTimeout(10 * time.Millisecond)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
			ctxErr = r.Context().Err()
		}),
	)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/trips", nil))

	assert.ErrorIs(t, ctxErr, context.DeadlineExceeded)
}
