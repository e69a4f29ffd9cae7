package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"l4d-chat-relay/internal/testutil"
)

func newTestClient(hub *Hub) *Client {
	return &Client{
		hub:        hub,
		send:       make(chan []byte, 256),
		remoteAddr: "test",
	}
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = hub.Run(ctx)
	}()
	t.Cleanup(cancel)

	return hub, cancel
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for hub.Clients() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, got %d", want, hub.Clients())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_NewHub(t *testing.T) {
	hub := NewHub()

	if hub.clients == nil {
		t.Error("Expected clients map to be initialized")
	}
	if hub.broadcast == nil {
		t.Error("Expected broadcast channel to be initialized")
	}
	if hub.register == nil || hub.unregister == nil {
		t.Error("Expected register channels to be initialized")
	}
	if hub.Clients() != 0 {
		t.Errorf("Expected no clients, got %d", hub.Clients())
	}
}

func TestHub_ContextCancellation(t *testing.T) {
	hub := NewHub()

	ctx, cancel := context.WithCancel(context.Background())

	errChan := make(chan error, 1)
	go func() {
		errChan <- hub.Run(ctx)
	}()

	cancel()

	select {
	case err := <-errChan:
		if err != context.Canceled {
			t.Errorf("Expected context.Canceled error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Hub did not stop within timeout")
	}
}

func TestHub_PublishReachesAllClients(t *testing.T) {
	hub, _ := startHub(t)

	first := newTestClient(hub)
	second := newTestClient(hub)
	hub.Register(first)
	hub.Register(second)
	waitForClients(t, hub, 2)

	msg := testutil.NewTestChatMessage(testutil.WithMessageText("gg"))
	if err := hub.Publish(context.Background(), msg); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	for _, client := range []*Client{first, second} {
		select {
		case data := <-client.send:
			var event FeedEvent
			if err := json.Unmarshal(data, &event); err != nil {
				t.Fatalf("invalid feed frame: %v", err)
			}
			if event.Type != EventChatMessage {
				t.Errorf("Expected type %q, got %q", EventChatMessage, event.Type)
			}
			if event.Message != msg {
				t.Errorf("Expected %+v, got %+v", msg, event.Message)
			}
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub, _ := startHub(t)

	client := newTestClient(hub)
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.Unregister(client)
	waitForClients(t, hub, 0)

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("Expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	// A second unregister must not panic on the closed channel.
	hub.Unregister(client)
}

func TestHub_SlowClientDropped(t *testing.T) {
	hub, _ := startHub(t)

	slow := &Client{hub: hub, send: make(chan []byte), remoteAddr: "slow"}
	hub.Register(slow)
	waitForClients(t, hub, 1)

	if err := hub.Publish(context.Background(), testutil.NewTestChatMessage()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	waitForClients(t, hub, 0)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	hub, cancel := startHub(t)

	client := newTestClient(hub)
	hub.Register(client)
	waitForClients(t, hub, 1)

	cancel()

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("Expected send channel to be closed after shutdown")
		}
	case <-time.After(time.Second):
		t.Fatal("shutdown did not close client")
	}

	<-hub.done
	if err := hub.Publish(context.Background(), testutil.NewTestChatMessage()); err != ErrHubClosed {
		t.Errorf("Expected ErrHubClosed, got %v", err)
	}
}

func TestHub_PublishRespectsContext(t *testing.T) {
	// Hub not running: the broadcast buffer fills and Publish must give up.
	hub := NewHub()
	for i := 0; i < cap(hub.broadcast); i++ {
		hub.broadcast <- []byte("x")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := hub.Publish(ctx, testutil.NewTestChatMessage()); err != context.DeadlineExceeded {
		t.Errorf("Expected context.DeadlineExceeded, got %v", err)
	}
}
