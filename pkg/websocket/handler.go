package websocket

import (
	"log"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	hub *Hub
}

func NewHandler() *Handler {
	hub := NewHub()
	go hub.Run()

	return &Handler{
		hub: hub,
	}
}

// HandleWebSocket upgrades an admin request into a feed connection. Auth is
// enforced by the admin middleware in front of this route.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := NewClient(h.hub, conn)
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// SendBookingCreated notifies connected admins that a new booking arrived.
func (h *Handler) SendBookingCreated(bookingID string, data map[string]interface{}) {
	h.hub.Publish("booking_created", bookingID, data)
}

// SendBookingUpdated notifies connected admins about a status change.
func (h *Handler) SendBookingUpdated(bookingID string, data map[string]interface{}) {
	h.hub.Publish("booking_updated", bookingID, data)
}

func (h *Handler) GetHub() *Hub {
	return h.hub
}
