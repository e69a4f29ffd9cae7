package middleware

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"l4d-chat-relay/internal/observability"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(Metrics())
	r.Get("/api/v1/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	return r
}

func TestMetrics_RecordsRequestsByRoute(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantLabel  string
		wantStatus int
	}{
		{"matched route", "/api/v1/status", "/api/v1/status", http.StatusOK},
		{"error status", "/health/ready", "/health/ready", http.StatusServiceUnavailable},
		{"unknown path collapses", "/does/not/exist", "unmatched", http.StatusNotFound},
	}

	router := newRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := observability.HTTPRequestsTotal.WithLabelValues(
				http.MethodGet, tt.wantLabel, strconv.Itoa(tt.wantStatus))
			before := testutil.ToFloat64(counter)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestMetrics_DefaultStatusIsOK(t *testing.T) {
	counter := observability.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/status", "200")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)

	assert.Equal(t, "ok", w.Body.String())
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetrics_WithoutRouter(t *testing.T) {
	handler := Metrics()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	counter := observability.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/raw", "418")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodPost, "/raw", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

type hijackableRecorder struct {
	*httptest.ResponseRecorder
	hijacked bool
}

func (h *hijackableRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h.hijacked = true
	return nil, nil, nil
}

func TestResponseWriter_Hijack(t *testing.T) {
	t.Run("delegates when supported", func(t *testing.T) {
		rec := &hijackableRecorder{ResponseRecorder: httptest.NewRecorder()}
		rw := &responseWriter{ResponseWriter: rec}

		_, _, err := rw.Hijack()
		require.NoError(t, err)
		assert.True(t, rec.hijacked)
	})

	t.Run("errors when unsupported", func(t *testing.T) {
		rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

		_, _, err := rw.Hijack()
		assert.Error(t, err)
	})
}
