package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"l4d-chat-relay/internal/testutil"
)

type fakeStore struct {
	last time.Time
	err  error
}

func (f fakeStore) Get() (time.Time, error) {
	return f.last, f.err
}

type fakeSource struct {
	open bool
}

func (f fakeSource) CircuitOpen() bool {
	return f.open
}

type fakeConn struct {
	closed bool
}

func (f *fakeConn) IsClosed() bool {
	return f.closed
}

func okStore() fakeStore {
	return fakeStore{last: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)}
}

func TestHealth_ReturnsOK(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	Health(w, req)

	testutil.AssertStatusCode(t, w, http.StatusOK)
	testutil.AssertHeader(t, w, "Content-Type", "application/json")

	response := testutil.DecodeJSON[map[string]string](t, w)
	testutil.AssertEqual(t, response["status"], "ok")
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		store      fakeStore
		source     fakeSource
		rmq        Connection
		wantStatus int
		wantBody   string
		failing    string
	}{
		{
			name:       "all dependencies up",
			store:      okStore(),
			rmq:        &fakeConn{},
			wantStatus: http.StatusOK,
			wantBody:   "ready",
		},
		{
			name:       "broker not configured",
			store:      okStore(),
			rmq:        nil,
			wantStatus: http.StatusOK,
			wantBody:   "ready",
		},
		{
			name:       "watermark unreadable",
			store:      fakeStore{err: errors.New("watermark not initialized")},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "not_ready",
			failing:    "watermark",
		},
		{
			name:       "circuit open",
			store:      okStore(),
			source:     fakeSource{open: true},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "not_ready",
			failing:    "hlstats",
		},
		{
			name:       "broker connection closed",
			store:      okStore(),
			rmq:        &fakeConn{closed: true},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "not_ready",
			failing:    "rabbitmq",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			w := httptest.NewRecorder()

			Ready(tt.store, tt.source, tt.rmq)(w, req)

			testutil.AssertStatusCode(t, w, tt.wantStatus)

			var response struct {
				Status string                       `json:"status"`
				Checks map[string]HealthCheckResult `json:"checks"`
			}
			testutil.AssertNoError(t, json.NewDecoder(w.Body).Decode(&response))
			testutil.AssertEqual(t, response.Status, tt.wantBody)
			testutil.AssertEqual(t, len(response.Checks), 3)

			if tt.failing != "" {
				testutil.AssertEqual(t, response.Checks[tt.failing].Status, statusDown)
			}
			if tt.rmq == nil {
				testutil.AssertEqual(t, response.Checks["rabbitmq"].Status, statusDisabled)
			}
		})
	}
}

func TestHealthCheckResult_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(HealthCheckResult{Status: "up"})
	testutil.AssertNoError(t, err)

	jsonStr := string(data)
	testutil.AssertNotContains(t, jsonStr, "latency_ms")
	testutil.AssertNotContains(t, jsonStr, "error")
	testutil.AssertNotContains(t, jsonStr, "metadata")
}

func TestCheckWatermark_IncludesLastDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

	result := checkWatermark(req.Context(), okStore())

	testutil.AssertEqual(t, result.Status, statusUp)
	testutil.AssertEqual(t, result.Metadata["last_date"].(string), "2024-01-02 10:00:00")
}

// Benchmark health endpoint
func BenchmarkHealth(b *testing.B) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		Health(w, req)
	}
}
