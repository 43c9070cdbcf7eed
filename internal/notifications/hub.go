package notifications

import (
	"errors"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// maxClients bounds the number of simultaneously connected subscribers.
const maxClients = 10000

// Hub tracks connected websocket subscribers and fans broadcast payloads
// out to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

// Register adds a connection and returns its Client.
func (h *Hub) Register(conn *websocket.Conn) (*Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) >= maxClients {
		return nil, errors.New("server connection limit reached")
	}

	client := NewClient(h, conn)
	h.clients[client] = struct{}{}
	return client, nil
}

// UnregisterClient removes a client and closes its send channel.
func (h *Hub) UnregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

// Broadcast sends data to every connected client. Clients with full buffers
// miss the message; delivery is lossy on purpose.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.TrySend(data)
	}
}

// ClientCount reports how many subscribers are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
