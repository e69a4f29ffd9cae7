package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessage_Time(t *testing.T) {
	msg := ChatMessage{Date: "2024-01-02 10:00:00"}

	got, err := msg.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), got)

	_, err = ChatMessage{Date: "02.01.2024"}.Time()
	assert.Error(t, err)
}

func TestChatMessage_After(t *testing.T) {
	watermark := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-02 10:00:00", true},
		{"2024-01-01 00:00:01", true},
		{"2024-01-01 00:00:00", false},
		{"2023-12-31 23:59:59", false},
		{"not a date", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, ChatMessage{Date: tt.date}.After(watermark))
		})
	}
}

func TestRateLimitError(t *testing.T) {
	var err error = &RateLimitError{RetryAfter: 5 * time.Second}

	assert.Equal(t, "rate limited: retry after 5s", err.Error())

	wrapped := errors.Join(errors.New("send failed"), err)
	var rl *RateLimitError
	require.True(t, errors.As(wrapped, &rl))
	assert.Equal(t, 5*time.Second, rl.RetryAfter)
}
