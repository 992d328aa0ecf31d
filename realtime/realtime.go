package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Activity event types pushed to the admin dashboard
const (
	EventVisit        = "visit"
	EventSuggestion   = "suggestion"
	EventLoginAttempt = "login_attempt"
	EventGameChange   = "game_change"
)

var (
	clients   = make(map[*websocket.Conn]bool) // Connected admin dashboard clients
	broadcast = make(chan ActivityEvent, 16)   // Broadcast channel for activity events
	mutex     sync.Mutex                       // Mutex to protect the clients map
)

// ActivityEvent is one entry of the live activity feed
type ActivityEvent struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RegisterClient adds a WebSocket client to the activity feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	clients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from the activity feed
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(clients, conn)
	mutex.Unlock()
}

// BroadcastActivity queues an event for all connected clients. Dropping the
// event when the channel is full is acceptable, the feed is advisory.
func BroadcastActivity(event ActivityEvent) {
	select {
	case broadcast <- event:
	default:
		log.Warn("activity feed channel full, event dropped")
	}
}

func handleBroadcast() {
	for event := range broadcast {
		mutex.Lock()
		for client := range clients {
			if err := client.WriteJSON(event); err != nil {
				log.Warnf("WebSocket write error: %v", err)
				client.Close()
				delete(clients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
