package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/notification/domain"
)

type unicastMessage struct {
	userID  uuid.UUID
	payload []byte
}

// Hub maintains the set of active clients and routes notifications to
// them. Callers hand over domain notifications; the hub owns the wire
// encoding.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Notifications for every connected client.
	broadcast chan []byte

	// Notifications for a single user's connections.
	unicast chan unicastMessage

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	stop     chan struct{}
	stopOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		unicast:    make(chan unicastMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),

		clients: make(map[*Client]bool),
		stop:    make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("[WebSocket Hub] Client registered (User: %s)", client.userID)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[WebSocket Hub] Client unregistered (User: %s)", client.userID)
			}
		case payload := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		case msg := <-h.unicast:
			for client := range h.clients {
				if client.userID == msg.userID {
					select {
					case client.send <- msg.payload:
					default:
						close(client.send)
						delete(h.clients, client)
					}
				}
			}
		case <-h.stop:
			log.Println("[WebSocket Hub] Stopping hub")
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		}
	}
}

// Broadcast pushes a notification to every connected client.
func (h *Hub) Broadcast(n *domain.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		log.Printf("[WebSocket Hub] marshal: %v", err)
		return
	}
	select {
	case h.broadcast <- payload:
	case <-h.stop:
	}
}

// SendToUser pushes a notification to every connection the user holds.
func (h *Hub) SendToUser(userID uuid.UUID, n *domain.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		log.Printf("[WebSocket Hub] marshal: %v", err)
		return
	}
	select {
	case h.unicast <- unicastMessage{userID: userID, payload: payload}:
	case <-h.stop:
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}
