package events

import (
	"encoding/json"
	"time"

	"team-docs-backend/internal/logger"
)

type subscription struct {
	client *Client
	room   string
}

type outbound struct {
	room    string
	payload []byte
}

// Hub maintains the set of connected clients and routes published events to
// the rooms they subscribed to. All room state is owned by the Run loop.
type Hub struct {
	clients map[*Client]bool
	rooms   map[string]map[*Client]bool

	register    chan *Client
	unregister  chan *Client
	subscribe   chan subscription
	unsubscribe chan subscription
	publish     chan outbound

	log *logger.Logger
}

// NewHub creates a hub; call Run in a goroutine before serving connections
func NewHub() *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		rooms:       make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan subscription),
		unsubscribe: make(chan subscription),
		publish:     make(chan outbound, 64),
		log:         logger.ForComponent("events"),
	}
}

// Run processes registrations, room membership changes, and published
// events until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.WithField("client", client.id).Debug("client connected")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.log.WithField("client", client.id).Debug("client disconnected")
			}

		case sub := <-h.subscribe:
			if !h.clients[sub.client] {
				break
			}
			if h.rooms[sub.room] == nil {
				h.rooms[sub.room] = make(map[*Client]bool)
			}
			h.rooms[sub.room][sub.client] = true
			sub.client.rooms[sub.room] = true

		case sub := <-h.unsubscribe:
			h.leave(sub.client, sub.room)

		case msg := <-h.publish:
			for client := range h.rooms[msg.room] {
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer; drop the connection rather than block the hub
					h.drop(client)
					h.log.WithField("client", client.id).Warn("dropped slow client")
				}
			}
		}
	}
}

// drop removes a client from every room and closes its send channel.
// The clients set guarantees close runs at most once even when a slow
// consumer is dropped before its reader unregisters.
func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	for room := range client.rooms {
		h.leave(client, room)
	}
	close(client.send)
}

func (h *Hub) leave(client *Client, room string) {
	if clients, ok := h.rooms[room]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(client.rooms, room)
}

// PublishDocumentEvent implements Publisher: the event goes to both the
// document room and the owning team's room.
func (h *Hub) PublishDocumentEvent(evt Event) {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now()
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		h.log.WithError(err).Error("failed to encode event")
		return
	}
	h.publish <- outbound{room: DocumentRoom(evt.DocumentID), payload: payload}
	h.publish <- outbound{room: TeamRoom(evt.TeamID), payload: payload}
}
