package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"l4d-chat-relay/internal/domain"
	"l4d-chat-relay/internal/observability"
)

// FeedEvent is the frame pushed to feed subscribers for every relayed message
type FeedEvent struct {
	Type    string             `json:"type"`
	Message domain.ChatMessage `json:"message"`
}

const EventChatMessage = "chat_message"

var ErrHubClosed = errors.New("feed hub is shut down")

// Hub fans relayed chat messages out to connected feed clients
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Broadcast channel
	broadcast chan []byte

	// Register client
	register chan *Client

	// Unregister client
	unregister chan *Client

	// Shutdown signal
	done chan struct{}

	active atomic.Int64
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run(ctx context.Context) error {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			slog.Info("hub shutting down gracefully")
			return ctx.Err()

		case client := <-h.register:
			h.clients[client] = true
			h.active.Add(1)
			observability.FeedConnectionsActive.Inc()
			slog.Info("feed client registered", slog.String("remote", client.remoteAddr))

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
					observability.FeedMessagesSent.Inc()
				default:
					// Client's send buffer is full, drop it
					h.unregisterClient(client)
				}
			}
		}
	}
}

// unregisterClient safely removes a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.active.Add(-1)
	observability.FeedConnectionsActive.Dec()
	slog.Info("feed client unregistered", slog.String("remote", client.remoteAddr))
}

// shutdown performs graceful cleanup of all connections
func (h *Hub) shutdown() {
	close(h.done)

	for client := range h.clients {
		h.unregisterClient(client)
	}

	slog.Info("hub shutdown complete")
}

// Publish implements the relay sink: it queues msg for every connected client.
func (h *Hub) Publish(ctx context.Context, msg domain.ChatMessage) error {
	data, err := json.Marshal(FeedEvent{Type: EventChatMessage, Message: msg})
	if err != nil {
		return fmt.Errorf("failed to marshal feed event: %w", err)
	}

	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}

	select {
	case h.broadcast <- data:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Clients reports the number of connected feed clients
func (h *Hub) Clients() int {
	return int(h.active.Load())
}

// Register registers a client with the hub
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}
