// Package hlstats fetches and parses the HLstatsX chat log page.
package hlstats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"

	"l4d-chat-relay/internal/domain"
	"l4d-chat-relay/internal/observability"
)

// ChatPath is appended to the base URL to reach the chat log.
const ChatPath = "/stats/hlstats.php?mode=chat&game=l4d"

const maxPageSize = 8 << 20

var (
	ErrFetchFailed = errors.New("chat page fetch failed")
	ErrParseFailed = errors.New("chat page parse failed")
)

// FetchError is returned when the page answers with a non-200 status.
type FetchError struct {
	Status int
	Reason string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Status, e.Reason)
}

func (e *FetchError) Unwrap() error {
	return ErrFetchFailed
}

// Client handles requests to the stats site
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewClient creates a stats client for baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "hlstats",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("circuit breaker changed state",
					slog.String("name", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()))
				if to == gobreaker.StateOpen {
					observability.FetchCircuitOpen.Set(1)
				} else {
					observability.FetchCircuitOpen.Set(0)
				}
			},
		}),
	}
}

// ChatURL returns the absolute URL of the chat log page.
func (c *Client) ChatURL() string {
	return c.baseURL + ChatPath
}

// CircuitOpen reports whether fetches are currently short-circuited.
func (c *Client) CircuitOpen() bool {
	return c.breaker.State() == gobreaker.StateOpen
}

// Chat fetches the chat page and parses it, newest message first.
// Errors wrap ErrFetchFailed or ErrParseFailed.
func (c *Client) Chat(ctx context.Context) ([]domain.ChatMessage, error) {
	url := c.ChatURL()

	page, err := c.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return ParseChat(strings.NewReader(page), url)
}

// Fetch issues a single GET and returns the body of a 200 response.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	ctx, span := observability.StartSpan(ctx, "hlstats.fetch", attribute.String("url", url))

	start := time.Now()
	body, err := c.breaker.Execute(func() (interface{}, error) {
		return c.get(ctx, url)
	})
	observability.PageFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		observability.EndSpan(span, err)
		return "", err
	}

	observability.EndSpan(span, nil)
	return body.(string), nil
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %w", ErrFetchFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{
			Status: resp.StatusCode,
			Reason: strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read body: %w", ErrFetchFailed, err)
	}

	return string(data), nil
}
