package hlstats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l4d-chat-relay/internal/testutil"
)

func TestChat_Success(t *testing.T) {
	page := testutil.ChatPage(
		testutil.NewChatRow(testutil.WithDate("2024-01-02 10:00:00")),
		testutil.NewChatRow(testutil.WithDate("2024-01-01 09:00:00")),
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats/hlstats.php", r.URL.Path)
		assert.Equal(t, "chat", r.URL.Query().Get("mode"))
		assert.Equal(t, "l4d", r.URL.Query().Get("game"))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(page))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", time.Second)
	assert.Equal(t, server.URL+ChatPath, client.ChatURL())

	messages, err := client.Chat(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "2024-01-02 10:00:00", messages[0].Date)
	assert.Contains(t, messages[0].UserLink, server.URL+"/stats/hlstats.php?mode=playerinfo")
}

func TestFetch_HTTPErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		reason     string
	}{
		{"Not Found", http.StatusNotFound, "Not Found"},
		{"Internal Server Error", http.StatusInternalServerError, "Internal Server Error"},
		{"Service Unavailable", http.StatusServiceUnavailable, "Service Unavailable"},
		{"No Content", http.StatusNoContent, "No Content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second)
			body, err := client.Fetch(context.Background(), client.ChatURL())

			assert.Empty(t, body)
			assert.True(t, errors.Is(err, ErrFetchFailed))

			var fetchErr *FetchError
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, tt.statusCode, fetchErr.Status)
			assert.Equal(t, tt.reason, fetchErr.Reason)
		})
	}
}

func TestChat_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)
	messages, err := client.Chat(context.Background())

	assert.Nil(t, messages)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}

func TestChat_ParseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>no chat here</body></html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	messages, err := client.Chat(context.Background())

	assert.Nil(t, messages)
	assert.True(t, errors.Is(err, ErrParseFailed))
	assert.False(t, errors.Is(err, ErrFetchFailed))
}

func TestFetch_CircuitOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	for i := 0; i < 5; i++ {
		_, err := client.Fetch(context.Background(), client.ChatURL())
		require.Error(t, err)
	}
	assert.True(t, client.CircuitOpen())

	_, err := client.Fetch(context.Background(), client.ChatURL())
	assert.True(t, errors.Is(err, ErrFetchFailed))
	assert.Equal(t, int32(5), hits.Load(), "open circuit must not reach the server")

	var fetchErr *FetchError
	assert.False(t, errors.As(err, &fetchErr))
}

func TestFetch_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx, client.ChatURL())
	assert.True(t, errors.Is(err, ErrFetchFailed))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
