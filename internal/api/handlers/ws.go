package handlers

import (
	"net/http"

	"team-docs-backend/internal/events"
	"team-docs-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin policy is delegated to the CORS layer
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades HTTP connections to the room-based event channel
type WSHandler struct {
	hub *events.Hub
	log *logger.Logger
}

// NewWSHandler creates a new websocket handler
func NewWSHandler(hub *events.Hub) *WSHandler {
	return &WSHandler{
		hub: hub,
		log: logger.ForComponent("ws-handler"),
	}
}

// Connect handles GET /ws
// @Summary Open the event channel
// @Description Upgrade to a websocket; clients then join team and document rooms with subscribe messages
// @Tags events
// @Success 101 "Connection upgraded"
// @Failure 500 {object} map[string]interface{} "Upgrade failed"
// @Router /ws [get]
func (h *WSHandler) Connect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Error("websocket upgrade failed")
		return
	}

	client := events.NewClient(h.hub, conn, uuid.New().String())
	go client.WritePump()
	go client.ReadPump()
}
