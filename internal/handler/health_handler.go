package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// WatermarkReader is satisfied by the watermark file store
type WatermarkReader interface {
	Get() (time.Time, error)
}

// CircuitReporter is satisfied by the stats page client
type CircuitReporter interface {
	CircuitOpen() bool
}

// Connection is satisfied by the RabbitMQ publisher
type Connection interface {
	IsClosed() bool
}

// Health returns basic health check
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status    string                 `json:"status"`
	LatencyMs int64                  `json:"latency_ms,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

const (
	statusUp       = "up"
	statusDown     = "down"
	statusDisabled = "disabled"
)

// Ready reports whether the relay can make progress. rmq may be nil when
// no broker is configured.
func Ready(store WatermarkReader, source CircuitReporter, rmq Connection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		checks := map[string]HealthCheckResult{
			"watermark": checkWatermark(ctx, store),
			"hlstats":   checkSource(source),
			"rabbitmq":  checkRabbitMQ(rmq),
		}

		allHealthy := true
		for _, check := range checks {
			if check.Status == statusDown {
				allHealthy = false
			}
		}

		response := map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"checks":    checks,
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			response["status"] = "ready"
			w.WriteHeader(http.StatusOK)
		} else {
			response["status"] = "not_ready"
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		json.NewEncoder(w).Encode(response)
	}
}

// checkWatermark verifies the persisted watermark is readable
func checkWatermark(ctx context.Context, store WatermarkReader) HealthCheckResult {
	start := time.Now()

	type result struct {
		last time.Time
		err  error
	}
	done := make(chan result, 1)
	go func() {
		last, err := store.Get()
		done <- result{last, err}
	}()

	select {
	case <-ctx.Done():
		return HealthCheckResult{Status: statusDown, Error: ctx.Err().Error()}
	case res := <-done:
		latency := time.Since(start)
		if res.err != nil {
			return HealthCheckResult{
				Status:    statusDown,
				LatencyMs: latency.Milliseconds(),
				Error:     res.err.Error(),
			}
		}
		return HealthCheckResult{
			Status:    statusUp,
			LatencyMs: latency.Milliseconds(),
			Metadata: map[string]interface{}{
				"last_date": res.last.Format("2006-01-02 15:04:05"),
			},
		}
	}
}

// checkSource reports the fetch circuit state
func checkSource(source CircuitReporter) HealthCheckResult {
	if source.CircuitOpen() {
		return HealthCheckResult{
			Status: statusDown,
			Error:  "circuit open",
		}
	}
	return HealthCheckResult{Status: statusUp}
}

// checkRabbitMQ verifies RabbitMQ connectivity
func checkRabbitMQ(rmq Connection) HealthCheckResult {
	if rmq == nil {
		return HealthCheckResult{Status: statusDisabled}
	}

	if rmq.IsClosed() {
		return HealthCheckResult{
			Status: statusDown,
			Error:  "connection closed",
		}
	}

	return HealthCheckResult{Status: statusUp}
}
