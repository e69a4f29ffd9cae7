package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"l4d-chat-relay/internal/relay"
	"l4d-chat-relay/internal/testutil"
	"l4d-chat-relay/internal/watermark"
)

type fakeStats struct {
	stats relay.Stats
}

func (f fakeStats) Stats() relay.Stats {
	return f.stats
}

type fakeFeed int

func (f fakeFeed) Clients() int {
	return int(f)
}

func TestStatusHandler_Get(t *testing.T) {
	stats := relay.Stats{
		Cycles:      12,
		Delivered:   5,
		RateLimited: 1,
		LastCycleAt: time.Now(),
		LastOutcome: "no_new",
	}
	h := NewStatusHandler(okStore(), fakeStats{stats}, fakeSource{}, fakeFeed(2))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	w := httptest.NewRecorder()

	h.Get(w, req)

	testutil.AssertStatusCode(t, w, http.StatusOK)
	testutil.AssertHeader(t, w, "Content-Type", "application/json")

	resp := testutil.DecodeJSON[StatusResponse](t, w)
	testutil.AssertEqual(t, resp.Watermark, "2024-01-02 10:00:00")
	testutil.AssertEqual(t, resp.WatermarkError, "")
	testutil.AssertEqual(t, resp.FeedClients, 2)
	testutil.AssertEqual(t, resp.CircuitOpen, false)
	testutil.AssertEqual(t, resp.Relay.Cycles, int64(12))
	testutil.AssertEqual(t, resp.Relay.Delivered, int64(5))
	testutil.AssertEqual(t, resp.Relay.LastOutcome, "no_new")
}

func TestStatusHandler_WatermarkErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not initialized", fmt.Errorf("read: %w", watermark.ErrNotInitialized), "not initialized"},
		{"corrupt", errors.New("invalid character"), "invalid character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStatusHandler(fakeStore{err: tt.err}, fakeStats{}, fakeSource{open: true}, nil)

			resp := h.Snapshot()

			testutil.AssertEqual(t, resp.Watermark, "")
			testutil.AssertEqual(t, resp.WatermarkError, tt.want)
			testutil.AssertEqual(t, resp.CircuitOpen, true)
			testutil.AssertEqual(t, resp.FeedClients, 0)
		})
	}
}

func TestStatusHandler_Text(t *testing.T) {
	stats := relay.Stats{Cycles: 3, Delivered: 2, Failed: 1, LastCycleAt: time.Now(), LastOutcome: "delivered"}
	h := NewStatusHandler(okStore(), fakeStats{stats}, fakeSource{open: true}, nil)

	text := h.Text()

	testutil.AssertContains(t, text, "watermark: 2024-01-02 10:00:00")
	testutil.AssertContains(t, text, "cycles: 3")
	testutil.AssertContains(t, text, "delivered: 2")
	testutil.AssertContains(t, text, "failed: 1")
	testutil.AssertContains(t, text, "(delivered)")
	testutil.AssertContains(t, text, "circuit open")
}

func TestStatusHandler_TextBeforeFirstCycle(t *testing.T) {
	h := NewStatusHandler(fakeStore{err: errors.New("<bad> json")}, fakeStats{}, fakeSource{}, nil)

	text := h.Text()

	testutil.AssertContains(t, text, "last cycle: never")
	testutil.AssertContains(t, text, "&lt;bad&gt; json")
	testutil.AssertNotContains(t, text, "circuit open")
}
