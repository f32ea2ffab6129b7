package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Hub fans booking events out to every connected admin session. Events are
// deduplicated by booking id so a re-delivered insert never reaches clients
// twice.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	seen       map[string]bool
	seenOrder  []string
	mutex      sync.RWMutex
}

// seenLimit bounds the dedupe window; older ids fall out first.
const seenLimit = 1024

type Message struct {
	Type      string                 `json:"type"`
	BookingID string                 `json:"booking_id,omitempty"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		seen:       make(map[string]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	log.Printf("Admin feed client connected (%d active)", len(h.clients))

	welcomeMsg := Message{
		Type:      "welcome",
		Timestamp: getCurrentTimestamp(),
		Data: map[string]interface{}{
			"message": "Connected successfully",
		},
	}

	h.sendToClient(client, welcomeMsg)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		log.Printf("Admin feed client disconnected (%d active)", len(h.clients))
	}
}

func (h *Hub) broadcastMessage(message []byte) {
	var msg Message
	if err := json.Unmarshal(message, &msg); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		return
	}

	// Inserts must reach clients at most once; status updates may repeat
	// (confirm, re-open, confirm again).
	if msg.Type == "booking_created" && msg.BookingID != "" && h.alreadySeen(msg.BookingID, msg.Type) {
		return
	}

	h.sendToAll(msg)
}

func (h *Hub) alreadySeen(bookingID, msgType string) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	key := msgType + ":" + bookingID
	if h.seen[key] {
		return true
	}

	h.seen[key] = true
	h.seenOrder = append(h.seenOrder, key)
	if len(h.seenOrder) > seenLimit {
		oldest := h.seenOrder[0]
		h.seenOrder = h.seenOrder[1:]
		delete(h.seen, oldest)
	}

	return false
}

// sendToAll takes the write lock: clients with a full send buffer are
// dropped from the set here.
func (h *Hub) sendToAll(message Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, _ := json.Marshal(message)
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) sendToClient(client *Client, message Message) {
	data, _ := json.Marshal(message)
	select {
	case client.send <- data:
	default:
	}
}

// Publish queues a booking event for delivery to all connected admins.
func (h *Hub) Publish(msgType, bookingID string, data map[string]interface{}) {
	message := Message{
		Type:      msgType,
		BookingID: bookingID,
		Timestamp: getCurrentTimestamp(),
		Data:      data,
	}

	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling booking event: %v", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		log.Printf("Admin feed backlog full, dropping %s for booking %s", msgType, bookingID)
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func getCurrentTimestamp() int64 {
	return time.Now().Unix()
}
