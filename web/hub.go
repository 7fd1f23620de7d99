package web

import (
	"log"
	"sync"
	"time"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

// liveMessage is the envelope pushed to websocket viewers.
type liveMessage struct {
	Type      string    `json:"type"`
	GameID    string    `json:"gameId"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

type liveEvent struct {
	gameID string
	msg    liveMessage
}

// Hub fans recorded events out to the websocket viewers of each game. It
// implements controller.EventSink; Publish* never block the recording path,
// a full buffer drops the message instead.
type Hub struct {
	clients   map[*wsClient]bool
	clientsMu sync.RWMutex

	events     chan liveEvent
	register   chan *wsClient
	unregister chan *wsClient
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*wsClient]bool),
		events:     make(chan liveEvent, 256),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
	}
}

// Run is the hub's main loop. It exits when shutdown is closed, closing
// every client connection.
func (h *Hub) Run(shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			h.closeAll()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case e := <-h.events:
			h.deliver(e)
		}
	}
}

func (h *Hub) PublishGoal(e model.GoalEvent) {
	h.publish(liveEvent{
		gameID: e.GameID,
		msg: liveMessage{
			Type:      "goal",
			GameID:    e.GameID,
			Payload:   e,
			Timestamp: time.Now().UTC(),
		},
	})
}

func (h *Hub) PublishPenalty(e model.PenaltyEvent) {
	h.publish(liveEvent{
		gameID: e.GameID,
		msg: liveMessage{
			Type:      "penalty",
			GameID:    e.GameID,
			Payload:   e,
			Timestamp: time.Now().UTC(),
		},
	})
}

func (h *Hub) publish(e liveEvent) {
	select {
	case h.events <- e:
	default:
		log.Printf("live event buffer full, dropping %s event for game %s", e.msg.Type, e.gameID)
	}
}

func (h *Hub) Register(c *wsClient) {
	h.register <- c
}

func (h *Hub) Unregister(c *wsClient) {
	h.unregister <- c
}

func (h *Hub) registerClient(c *wsClient) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.clients[c] = true
	log.Printf("viewer connected to game %s (total viewers: %d)", c.gameID, len(h.clients))
}

func (h *Hub) unregisterClient(c *wsClient) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		log.Printf("viewer disconnected from game %s (total viewers: %d)", c.gameID, len(h.clients))
	}
}

// deliver pushes the event to every viewer of its game. A viewer whose send
// buffer is full is too slow to keep up and gets disconnected.
func (h *Hub) deliver(e liveEvent) {
	h.clientsMu.RLock()
	viewers := make([]*wsClient, 0, len(h.clients))
	for c := range h.clients {
		if c.gameID == e.gameID {
			viewers = append(viewers, c)
		}
	}
	h.clientsMu.RUnlock()

	for _, c := range viewers {
		if !c.trySend(e.msg) {
			log.Printf("viewer buffer full for game %s, disconnecting", c.gameID)
			go h.Unregister(c)
		}
	}
}

func (h *Hub) viewerCount(gameID string) int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	n := 0
	for c := range h.clients {
		if c.gameID == gameID {
			n++
		}
	}
	return n
}

func (h *Hub) closeAll() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}
