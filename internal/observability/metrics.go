package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cycle outcomes recorded in RelayCyclesTotal
const (
	OutcomeDelivered   = "delivered"
	OutcomeSendFailed  = "send_failed"
	OutcomeNoNew       = "no_new"
	OutcomeEmpty       = "empty"
	OutcomeFetchFailed = "fetch_failed"
	OutcomeParseFailed = "parse_failed"
	OutcomeError       = "error"
)

var (
	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Live feed metrics
	FeedConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_connections_active",
			Help: "Number of active live feed WebSocket connections",
		},
	)

	FeedMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_messages_sent_total",
			Help: "Total number of messages pushed to live feed clients",
		},
	)

	// Relay metrics
	RelayCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_cycles_total",
			Help: "Delivery cycles by outcome",
		},
		[]string{"outcome"},
	)

	RelayCycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "relay_cycle_duration_seconds",
			Help:    "Duration of a full fetch-filter-deliver-persist cycle",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	PageFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "relay_page_fetch_duration_seconds",
			Help:    "Chat page fetch latency in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	MessagesDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_messages_delivered_total",
			Help: "Chat messages successfully sent to the destination thread",
		},
	)

	SendFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_send_failures_total",
			Help: "Sends that failed with a non rate limit error",
		},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_rate_limited_total",
			Help: "Number of rate limit responses from the destination",
		},
	)

	RateLimitWaitSeconds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_rate_limit_wait_seconds_total",
			Help: "Total seconds spent waiting on rate limits",
		},
	)

	SinkPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_sink_publish_failures_total",
			Help: "Failed publishes to secondary sinks",
		},
		[]string{"sink"},
	)

	WatermarkTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_watermark_timestamp_seconds",
			Help: "Unix time of the last delivered chat message",
		},
	)

	FetchCircuitOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_fetch_circuit_open",
			Help: "Chat page circuit breaker open=1 closed=0",
		},
	)
)
