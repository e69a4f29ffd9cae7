package handler

import (
	"log/slog"
	"net/http"

	ws "l4d-chat-relay/internal/websocket"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The feed is public and read-only.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FeedHandler streams relayed chat messages over WebSocket
type FeedHandler struct {
	hub *ws.Hub
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(hub *ws.Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// HandleConnection handles WebSocket upgrade and connection
func (h *FeedHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade error", slog.String("error", err.Error()))
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
