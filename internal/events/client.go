package events

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// controlMessage is what clients send to manage their room subscriptions
type controlMessage struct {
	Action string `json:"action"`
	ID     string `json:"id"`
}

// Client is one websocket connection. rooms is only touched by the hub's
// Run loop.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	id    string
	rooms map[string]bool
}

// NewClient wraps an upgraded connection and registers it with the hub
func NewClient(hub *Hub, conn *websocket.Conn, id string) *Client {
	client := &Client{
		hub:   hub,
		conn:  conn,
		send:  make(chan []byte, 256),
		id:    id,
		rooms: make(map[string]bool),
	}
	hub.register <- client
	return client
}

// ReadPump consumes subscribe/unsubscribe control messages until the
// connection drops.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg controlMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.ID == "" {
			continue
		}

		switch msg.Action {
		case "subscribe-team":
			c.hub.subscribe <- subscription{client: c, room: TeamRoom(msg.ID)}
		case "unsubscribe-team":
			c.hub.unsubscribe <- subscription{client: c, room: TeamRoom(msg.ID)}
		case "subscribe-document":
			c.hub.subscribe <- subscription{client: c, room: DocumentRoom(msg.ID)}
		case "unsubscribe-document":
			c.hub.unsubscribe <- subscription{client: c, room: DocumentRoom(msg.ID)}
		}
	}
}

// WritePump forwards published events to the connection and keeps it alive
// with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
