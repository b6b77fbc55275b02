package push

import (
	"encoding/json"

	"frankies/internal/event"
	"frankies/internal/pkg/logger"
)

// Hub tracks the active WebSocket connections per recipient and fans
// notifications out to them. All map access happens on the run loop.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan event.Notification
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan event.Notification, 64),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if h.clients[client.recipient] == nil {
				h.clients[client.recipient] = make(map[*Client]struct{})
			}
			h.clients[client.recipient][client] = struct{}{}
		case client := <-h.unregister:
			if set, ok := h.clients[client.recipient]; ok {
				if _, ok := set[client]; ok {
					delete(set, client)
					close(client.send)
					if len(set) == 0 {
						delete(h.clients, client.recipient)
					}
				}
			}
		case n := <-h.broadcast:
			h.deliver(n)
		case <-h.done:
			for _, set := range h.clients {
				for client := range set {
					close(client.send)
				}
			}
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast queues a notification for the recipient's connections.
func (h *Hub) Broadcast(n event.Notification) {
	select {
	case h.broadcast <- n:
	case <-h.done:
	}
}

func (h *Hub) deliver(n event.Notification) {
	set := h.clients[n.Recipient]
	if len(set) == 0 {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		logger.L().Error().Err(err).Msg("failed to marshal push notification")
		return
	}
	for client := range set {
		select {
		case client.send <- payload:
		default:
			// Slow consumer: drop the connection rather than block the hub.
			delete(set, client)
			close(client.send)
		}
	}
}
