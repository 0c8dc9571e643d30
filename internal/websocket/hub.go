package websocket

import (
	"encoding/json"
	"sync"

	"pdf-evidence-be/internal/pkg/logger"

	"github.com/google/uuid"
)

type Hub struct {
	// Registered clients map: ClientID -> List of connections (multi-tab)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ClientID] = append(h.clients[client.ClientID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"client_id": client.ClientID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.ClientID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.ClientID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.ClientID]) == 0 {
					delete(h.clients, client.ClientID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"client_id": client.ClientID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send pushes a payload to every open connection of one workspace. It
// implements service.StatusDelivery.
func (h *Hub) Send(clientID string, payload interface{}) {
	id, err := uuid.Parse(clientID)
	if err != nil {
		h.logger.Warn("Hub", "Dropping message for unparseable client id", map[string]interface{}{"client_id": clientID})
		return
	}

	data, _ := json.Marshal(map[string]interface{}{
		"type": "status",
		"data": payload,
	})

	h.mu.RLock()
	clients, found := h.clients[id]
	h.mu.RUnlock()

	if !found {
		return
	}

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			// The unregister path owns the channel close.
			h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"client_id": id})
			h.unregister <- client
		}
	}
}
