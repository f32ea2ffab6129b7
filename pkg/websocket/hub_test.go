package websocket

import (
	"fmt"
	"testing"
)

func TestAlreadySeenDeduplicatesInserts(t *testing.T) {
	hub := NewHub()

	if hub.alreadySeen("abc123", "booking_created") {
		t.Error("first delivery should not be seen")
	}
	if !hub.alreadySeen("abc123", "booking_created") {
		t.Error("second delivery of the same insert should be dropped")
	}
	if hub.alreadySeen("def456", "booking_created") {
		t.Error("a different booking id is a fresh event")
	}
}

func TestSendToAllDropsStalledClients(t *testing.T) {
	hub := NewHub()

	stalled := &Client{hub: hub, send: make(chan []byte)}
	live := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.clients[stalled] = true
	hub.clients[live] = true

	hub.sendToAll(Message{Type: "booking_created", BookingID: "abc123"})

	if hub.ClientCount() != 1 {
		t.Fatalf("ClientCount = %d, want the stalled client dropped", hub.ClientCount())
	}
	select {
	case <-live.send:
	default:
		t.Error("live client should have received the event")
	}
}

func TestSeenWindowIsBounded(t *testing.T) {
	hub := NewHub()

	for i := 0; i < seenLimit+10; i++ {
		hub.alreadySeen(fmt.Sprintf("booking-%d", i), "booking_created")
	}

	if len(hub.seen) != seenLimit {
		t.Errorf("seen set holds %d ids, want %d", len(hub.seen), seenLimit)
	}
	// The oldest ids fell out of the window, so they count as fresh again.
	if hub.alreadySeen("booking-0", "booking_created") {
		t.Error("evicted id should be treated as unseen")
	}
}
