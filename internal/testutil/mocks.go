// Package testutil provides shared test utilities, mocks, and fixtures
// for testing the chat relay.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"l4d-chat-relay/internal/domain"
)

// Common test errors
var (
	ErrMockNotInitialized = errors.New("mock: watermark not initialized")
)

// MockScraper returns a fixed page result
type MockScraper struct {
	mu sync.Mutex

	ChatFunc func(ctx context.Context) ([]domain.ChatMessage, error)

	Messages []domain.ChatMessage
	Err      error
	Calls    int
}

func (m *MockScraper) Chat(ctx context.Context) ([]domain.ChatMessage, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()

	if m.ChatFunc != nil {
		return m.ChatFunc(ctx)
	}
	return m.Messages, m.Err
}

// MockSender records every text it is asked to send
type MockSender struct {
	mu sync.Mutex

	// SendFunc overrides the default behaviour; attempt is 1-based across all calls
	SendFunc func(ctx context.Context, text string, attempt int) error

	Attempts int
	Sent     []string
}

func (m *MockSender) Send(ctx context.Context, text string) error {
	m.mu.Lock()
	m.Attempts++
	attempt := m.Attempts
	m.mu.Unlock()

	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, text, attempt); err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.Sent = append(m.Sent, text)
	m.mu.Unlock()
	return nil
}

// SentTexts returns a copy of the successfully sent texts
func (m *MockSender) SentTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Sent...)
}

// MockSink collects published messages
type MockSink struct {
	mu sync.Mutex

	PublishFunc func(ctx context.Context, msg domain.ChatMessage) error

	Published []domain.ChatMessage
}

func (m *MockSink) Publish(ctx context.Context, msg domain.ChatMessage) error {
	if m.PublishFunc != nil {
		if err := m.PublishFunc(ctx, msg); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.Published = append(m.Published, msg)
	m.mu.Unlock()
	return nil
}

// Messages returns a copy of the published messages
func (m *MockSink) Messages() []domain.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ChatMessage(nil), m.Published...)
}

// MemoryWatermark is an in-memory watermark store
type MemoryWatermark struct {
	mu sync.Mutex

	UpdateErr error

	Date    string
	Updates []string
}

// NewMemoryWatermark creates a store holding date
func NewMemoryWatermark(date string) *MemoryWatermark {
	return &MemoryWatermark{Date: date}
}

func (m *MemoryWatermark) Get() (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Date == "" {
		return time.Time{}, ErrMockNotInitialized
	}
	return time.Parse(domain.DateLayout, m.Date)
}

func (m *MemoryWatermark) Update(date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Date = date
	m.Updates = append(m.Updates, date)
	return nil
}

// Current returns the stored watermark
func (m *MemoryWatermark) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Date
}
