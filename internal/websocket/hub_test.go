package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestHub() *Hub {
	h := NewHub(nopLogger{})
	go h.Run()
	return h
}

func (h *Hub) connectionCount(id uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[id])
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSendDeliversToAllConnections(t *testing.T) {
	h := newTestHub()
	id := uuid.New()

	first := &Client{Hub: h, ClientID: id, Send: make(chan []byte, 4)}
	second := &Client{Hub: h, ClientID: id, Send: make(chan []byte, 4)}
	h.register <- first
	h.register <- second
	waitFor(t, func() bool { return h.connectionCount(id) == 2 })

	h.Send(id.String(), map[string]string{"stage": "complete"})

	for _, c := range []*Client{first, second} {
		select {
		case msg := <-c.Send:
			if len(msg) == 0 {
				t.Error("empty payload delivered")
			}
		case <-time.After(time.Second):
			t.Fatal("connection did not receive the payload")
		}
	}
}

func TestSendUnknownClientIsNoop(t *testing.T) {
	h := newTestHub()
	h.Send(uuid.NewString(), "payload")
	h.Send("not-a-uuid", "payload")
}

func TestSendFullBufferUnregistersClientOnce(t *testing.T) {
	h := newTestHub()
	id := uuid.New()

	client := &Client{Hub: h, ClientID: id, Send: make(chan []byte, 1)}
	client.Send <- []byte("queued")
	h.register <- client
	waitFor(t, func() bool { return h.connectionCount(id) == 1 })

	// Buffer is full, so the message is dropped and the client evicted. The
	// unregister path performs the only close of the channel.
	h.Send(id.String(), "dropped")
	waitFor(t, func() bool { return h.connectionCount(id) == 0 })

	if msg := <-client.Send; string(msg) != "queued" {
		t.Errorf("queued message = %q, want %q", msg, "queued")
	}
	if _, ok := <-client.Send; ok {
		t.Error("channel should be closed after eviction")
	}

	// A second send to the evicted client must not panic the hub.
	h.Send(id.String(), "after eviction")

	// The hub loop is still alive and accepting registrations.
	replacement := &Client{Hub: h, ClientID: id, Send: make(chan []byte, 1)}
	h.register <- replacement
	waitFor(t, func() bool { return h.connectionCount(id) == 1 })
}

func TestUnregisterTwiceClosesOnce(t *testing.T) {
	h := newTestHub()
	id := uuid.New()

	client := &Client{Hub: h, ClientID: id, Send: make(chan []byte, 1)}
	h.register <- client
	waitFor(t, func() bool { return h.connectionCount(id) == 1 })

	// A full-buffer eviction and a read-pump disconnect can both queue the
	// same client; the second request finds nothing to close.
	h.unregister <- client
	h.unregister <- client
	waitFor(t, func() bool { return h.connectionCount(id) == 0 })

	if _, ok := <-client.Send; ok {
		t.Error("channel should be closed after unregister")
	}
}
