package handler

import (
	"encoding/json"
	"errors"
	"html"
	"net/http"
	"strconv"
	"time"

	"l4d-chat-relay/internal/domain"
	"l4d-chat-relay/internal/relay"
	"l4d-chat-relay/internal/watermark"
)

// StatsProvider is satisfied by *relay.Relay
type StatsProvider interface {
	Stats() relay.Stats
}

// ClientCounter is satisfied by the feed hub
type ClientCounter interface {
	Clients() int
}

// StatusHandler serves the relay status endpoint
type StatusHandler struct {
	store  WatermarkReader
	stats  StatsProvider
	source CircuitReporter
	feed   ClientCounter
}

// NewStatusHandler creates a new status handler. feed may be nil.
func NewStatusHandler(store WatermarkReader, stats StatsProvider, source CircuitReporter, feed ClientCounter) *StatusHandler {
	return &StatusHandler{
		store:  store,
		stats:  stats,
		source: source,
		feed:   feed,
	}
}

// StatusResponse is the body of GET /api/v1/status
type StatusResponse struct {
	Watermark      string      `json:"watermark,omitempty"`
	WatermarkError string      `json:"watermark_error,omitempty"`
	CircuitOpen    bool        `json:"circuit_open"`
	FeedClients    int         `json:"feed_clients"`
	Relay          relay.Stats `json:"relay"`
}

// Snapshot collects the current status
func (h *StatusHandler) Snapshot() StatusResponse {
	resp := StatusResponse{
		CircuitOpen: h.source.CircuitOpen(),
		Relay:       h.stats.Stats(),
	}

	last, err := h.store.Get()
	switch {
	case err == nil:
		resp.Watermark = last.Format(domain.DateLayout)
	case errors.Is(err, watermark.ErrNotInitialized):
		resp.WatermarkError = "not initialized"
	default:
		resp.WatermarkError = err.Error()
	}

	if h.feed != nil {
		resp.FeedClients = h.feed.Clients()
	}

	return resp
}

// Get returns the relay status
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Snapshot())
}

// Text renders the status for chat replies
func (h *StatusHandler) Text() string {
	s := h.Snapshot()

	watermark := s.Watermark
	if watermark == "" {
		watermark = s.WatermarkError
	}

	lastCycle := "never"
	if !s.Relay.LastCycleAt.IsZero() {
		lastCycle = time.Since(s.Relay.LastCycleAt).Truncate(time.Second).String() + " ago"
	}

	text := "📅 watermark: " + html.EscapeString(watermark) +
		"\n🔁 cycles: " + strconv.FormatInt(s.Relay.Cycles, 10) +
		"\n📨 delivered: " + strconv.FormatInt(s.Relay.Delivered, 10) +
		"\n⏳ rate limited: " + strconv.FormatInt(s.Relay.RateLimited, 10) +
		"\n❌ failed: " + strconv.FormatInt(s.Relay.Failed, 10) +
		"\n🕒 last cycle: " + lastCycle
	if s.Relay.LastOutcome != "" {
		text += " (" + s.Relay.LastOutcome + ")"
	}
	if s.CircuitOpen {
		text += "\n⚠️ stats page circuit open"
	}
	return text
}
