// Package relay runs the poll, filter, deliver and persist cycle that forwards
// new game chat messages to the destination thread.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"

	"l4d-chat-relay/internal/domain"
	"l4d-chat-relay/internal/hlstats"
	"l4d-chat-relay/internal/observability"
)

const (
	DefaultPollInterval = 3 * time.Second
	DefaultSendInterval = 1 * time.Second
)

// Scraper returns the current chat page, newest message first.
type Scraper interface {
	Chat(ctx context.Context) ([]domain.ChatMessage, error)
}

// WatermarkStore persists the date of the newest delivered message.
type WatermarkStore interface {
	Get() (time.Time, error)
	Update(date string) error
}

// Sender delivers one formatted notification.
// A *domain.RateLimitError asks the caller to wait and retry.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// Sink receives every message after it was delivered.
type Sink interface {
	Publish(ctx context.Context, msg domain.ChatMessage) error
}

// Config controls relay timing
type Config struct {
	PollInterval time.Duration
	SendInterval time.Duration
}

// Stats is a snapshot of relay progress
type Stats struct {
	Cycles      int64     `json:"cycles"`
	Delivered   int64     `json:"delivered"`
	RateLimited int64     `json:"rate_limited"`
	Failed      int64     `json:"failed"`
	LastCycleAt time.Time `json:"last_cycle_at"`
	LastOutcome string    `json:"last_outcome,omitempty"`
	LastError   string    `json:"last_error,omitempty"`
}

type namedSink struct {
	name string
	sink Sink
}

// Relay forwards new chat messages from the stats page to the sender
type Relay struct {
	scraper      Scraper
	store        WatermarkStore
	sender       Sender
	sinks        []namedSink
	pollInterval time.Duration
	pacer        *rate.Limiter

	mu    sync.RWMutex
	stats Stats
}

// New creates a relay. Zero intervals fall back to the defaults.
func New(scraper Scraper, store WatermarkStore, sender Sender, cfg Config) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.SendInterval <= 0 {
		cfg.SendInterval = DefaultSendInterval
	}

	return &Relay{
		scraper:      scraper,
		store:        store,
		sender:       sender,
		pollInterval: cfg.PollInterval,
		pacer:        rate.NewLimiter(rate.Every(cfg.SendInterval), 1),
	}
}

// AddSink registers a secondary destination. Must be called before Run.
func (r *Relay) AddSink(name string, sink Sink) {
	r.sinks = append(r.sinks, namedSink{name: name, sink: sink})
}

// Stats returns a copy of the current counters
func (r *Relay) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// Run executes cycles until ctx is cancelled. The next cycle starts
// PollInterval after the previous one finished, so cycles never overlap.
func (r *Relay) Run(ctx context.Context) error {
	slog.Info("relay started",
		slog.Duration("poll_interval", r.pollInterval),
		slog.Int("sinks", len(r.sinks)))

	for {
		r.RunOnce(ctx)

		if err := sleep(ctx, r.pollInterval); err != nil {
			slog.Info("relay stopped")
			return err
		}
	}
}

// RunOnce performs a single cycle and returns the number of delivered messages.
// An unavailable page is not an error: the cycle simply has nothing to do.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	ctx = observability.WithCycleID(ctx, uuid.NewString())
	ctx, span := observability.StartSpan(ctx, "relay.cycle")
	log := observability.FromContext(ctx)

	start := time.Now()
	delivered, outcome, err := r.cycle(ctx)
	observability.RelayCycleDuration.Observe(time.Since(start).Seconds())
	observability.RelayCyclesTotal.WithLabelValues(outcome).Inc()

	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("delivered", delivered),
	)
	observability.EndSpan(span, err)

	if err != nil && ctx.Err() == nil {
		log.Error("delivery cycle failed",
			slog.String("outcome", outcome),
			slog.Int("delivered", delivered),
			slog.String("error", err.Error()))
	}

	r.mu.Lock()
	r.stats.Cycles++
	r.stats.Delivered += int64(delivered)
	r.stats.LastCycleAt = start
	r.stats.LastOutcome = outcome
	r.stats.LastError = ""
	if err != nil {
		r.stats.LastError = err.Error()
	}
	r.mu.Unlock()

	return delivered, err
}

func (r *Relay) cycle(ctx context.Context) (int, string, error) {
	log := observability.FromContext(ctx)

	messages, err := r.scraper.Chat(ctx)
	switch {
	case errors.Is(err, hlstats.ErrFetchFailed):
		log.Warn("chat page unavailable", slog.String("error", err.Error()))
		return 0, observability.OutcomeFetchFailed, nil
	case errors.Is(err, hlstats.ErrParseFailed):
		return 0, observability.OutcomeParseFailed, fmt.Errorf("failed to parse chat page: %w", err)
	case err != nil:
		return 0, observability.OutcomeError, fmt.Errorf("failed to get chat page: %w", err)
	}

	if len(messages) == 0 {
		return 0, observability.OutcomeEmpty, nil
	}

	watermark, err := r.store.Get()
	if err != nil {
		return 0, observability.OutcomeError, fmt.Errorf("failed to load watermark: %w", err)
	}

	fresh := FilterNewer(messages, watermark)
	if len(fresh) == 0 {
		return 0, observability.OutcomeNoNew, nil
	}

	// Page order is newest first
	newest := fresh[0]
	log.Info("new chat messages",
		slog.Int("count", len(fresh)),
		slog.String("newest", newest.Date))

	delivered, failed := 0, 0
	for i := len(fresh) - 1; i >= 0; i-- {
		err := r.deliver(ctx, fresh[i])
		if err != nil && ctx.Err() != nil {
			return delivered, observability.OutcomeError, fmt.Errorf("delivery interrupted: %w", err)
		}
		if err != nil {
			// Only rate limits are retried; anything else skips the message.
			failed++
			log.Error("failed to deliver message, skipping",
				slog.String("date", fresh[i].Date),
				slog.String("user", fresh[i].UserName),
				slog.String("error", err.Error()))
			continue
		}
		delivered++
	}

	r.mu.Lock()
	r.stats.Failed += int64(failed)
	r.mu.Unlock()

	if err := r.store.Update(newest.Date); err != nil {
		return delivered, observability.OutcomeError, fmt.Errorf("failed to persist watermark: %w", err)
	}
	if t, err := newest.Time(); err == nil {
		observability.WatermarkTimestamp.Set(float64(t.Unix()))
	}

	log.Info("watermark advanced",
		slog.String("last_date", newest.Date),
		slog.Int("delivered", delivered),
		slog.Int("failed", failed))

	if failed > 0 {
		return delivered, observability.OutcomeSendFailed, nil
	}
	return delivered, observability.OutcomeDelivered, nil
}

// deliver sends msg, waiting out rate limits for as long as the destination asks.
// Any other send error is returned without a retry.
func (r *Relay) deliver(ctx context.Context, msg domain.ChatMessage) error {
	log := observability.FromContext(ctx)
	text := FormatMessage(msg)

	for {
		if err := r.pacer.Wait(ctx); err != nil {
			return err
		}

		sendCtx, span := observability.StartSpan(ctx, "relay.send", attribute.String("date", msg.Date))
		err := r.sender.Send(sendCtx, text)
		observability.EndSpan(span, err)

		var limited *domain.RateLimitError
		if errors.As(err, &limited) {
			log.Warn("rate limited by destination",
				slog.Duration("retry_after", limited.RetryAfter),
				slog.String("date", msg.Date))
			observability.RateLimitedTotal.Inc()
			observability.RateLimitWaitSeconds.Add(limited.RetryAfter.Seconds())
			r.mu.Lock()
			r.stats.RateLimited++
			r.mu.Unlock()

			if err := sleep(ctx, limited.RetryAfter); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			observability.SendFailures.Inc()
			return err
		}
		break
	}

	observability.MessagesDelivered.Inc()
	r.publish(ctx, msg)
	return nil
}

func (r *Relay) publish(ctx context.Context, msg domain.ChatMessage) {
	for _, s := range r.sinks {
		if err := s.sink.Publish(ctx, msg); err != nil {
			observability.SinkPublishFailures.WithLabelValues(s.name).Inc()
			observability.FromContext(ctx).Warn("failed to publish to sink",
				slog.String("sink", s.name),
				slog.String("error", err.Error()))
		}
	}
}

// FilterNewer keeps messages strictly newer than watermark, preserving order.
// Messages sharing the watermark's second are dropped.
func FilterNewer(messages []domain.ChatMessage, watermark time.Time) []domain.ChatMessage {
	fresh := make([]domain.ChatMessage, 0, len(messages))
	for _, m := range messages {
		if m.After(watermark) {
			fresh = append(fresh, m)
		}
	}
	return fresh
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
