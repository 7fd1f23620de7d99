package web

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Viewers only ever send pings; anything bigger is a protocol error.
	maxMessageSize = 512

	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The live feed is read-only and carries no credentials.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsClient is one websocket viewer subscribed to a single game's feed.
type wsClient struct {
	gameID string
	conn   *websocket.Conn
	send   chan liveMessage
}

func liveHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("error upgrading live connection: %v", err)
			return
		}

		c := &wsClient{
			gameID: chi.URLParam(r, "gameID"),
			conn:   conn,
			send:   make(chan liveMessage, sendBufferSize),
		}
		hub.Register(c)

		go c.writePump()
		go c.readPump(hub)
	}
}

func (c *wsClient) trySend(msg liveMessage) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// readPump drains the connection so pings and close frames are processed.
// The feed is one-way; incoming data frames are discarded.
func (c *wsClient) readPump(hub *Hub) {
	defer func() {
		hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("viewer for game %s closed unexpectedly: %v", c.gameID, err)
			}
			return
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				log.Printf("error writing to viewer for game %s: %v", c.gameID, err)
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
