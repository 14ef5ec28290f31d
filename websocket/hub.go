package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Client is a browser sitting on one class page, watching seat availability.
type Client struct {
	ClassID uuid.UUID
	Conn    *websocket.Conn
}

type SpotsUpdate struct {
	ClassID        uuid.UUID `json:"class_id"`
	AvailableSpots int       `json:"available_spots"`
}

var clients = make(map[*websocket.Conn]uuid.UUID)
var clientsMu sync.RWMutex
var Register = make(chan *Client, 16)
var Unregister = make(chan *Client, 16)
var Broadcast = make(chan SpotsUpdate, 64)

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.Conn] = client.ClassID
			clientsMu.Unlock()
		case client := <-Unregister:
			clientsMu.Lock()
			delete(clients, client.Conn)
			clientsMu.Unlock()
		case update := <-Broadcast:
			var stale []*websocket.Conn
			clientsMu.RLock()
			for conn, classID := range clients {
				if classID != update.ClassID {
					continue
				}
				if err := conn.WriteJSON(update); err != nil {
					log.Printf("Error pushing spots update to client: %v", err)
					conn.Close()
					stale = append(stale, conn)
				}
			}
			clientsMu.RUnlock()
			if len(stale) > 0 {
				clientsMu.Lock()
				for _, conn := range stale {
					delete(clients, conn)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// PublishSpots queues an availability update without blocking the caller. If
// the hub is not draining the channel the update is dropped; every booking
// mutation publishes a fresh absolute value, so a dropped one is harmless.
func PublishSpots(classID uuid.UUID, spots int) {
	select {
	case Broadcast <- SpotsUpdate{ClassID: classID, AvailableSpots: spots}:
	default:
	}
}

// ServeClassSpots holds a subscriber connection open for one class until the
// peer goes away.
func ServeClassSpots(conn *websocket.Conn) {
	classID, err := uuid.Parse(conn.Params("classId"))
	if err != nil {
		conn.Close()
		return
	}

	client := &Client{ClassID: classID, Conn: conn}
	Register <- client
	defer func() {
		Unregister <- client
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
