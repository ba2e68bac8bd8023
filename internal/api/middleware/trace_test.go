package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/YUKIMIKAMI/diary-app/internal/api/shared"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates_trace_id", func(t *testing.T) {
		t.Parallel()

		var seen string
		handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = shared.GetTraceID(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(shared.TraceIDHeader))
	})

	t.Run("uuid_independent_of_request_id", func(t *testing.T) {
		t.Parallel()

		var seen, requestID string
		handler := chimiddleware.RequestID(TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = shared.GetTraceID(r.Context())
			requestID = chimiddleware.GetReqID(r.Context())
		})))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, requestID)
		assert.NotEqual(t, requestID, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(shared.TraceIDHeader))
	})

	t.Run("new_id_per_request", func(t *testing.T) {
		t.Parallel()

		handler := TraceMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, first.Header().Get(shared.TraceIDHeader), second.Header().Get(shared.TraceIDHeader))
	})
}
