// Package events pushes order changes to websocket subscribers.
package events

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/junaidrashid-git/echocart-api/models"
	log "github.com/sirupsen/logrus"
)

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"

	writeWait  = 5 * time.Second
	sendBuffer = 16
)

// OrderEvent is the JSON frame sent to subscribers.
type OrderEvent struct {
	Type  string       `json:"type"`
	Order models.Order `json:"order"`
}

// client owns one connection. Only its write pump writes to conn; send is
// closed by the hub when the client is dropped.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected clients and fans order events out to them.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}
}

// Handler upgrades the request and keeps the client registered until it
// disconnects. Incoming frames are read and discarded.
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.WithError(err).Warn("websocket upgrade failed")
			return
		}
		cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}
		h.add(cl)
		go h.writePump(cl)
		defer h.remove(cl)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}

// writePump drains the client's queue and closes the connection once the
// queue is closed or a write fails.
func (h *Hub) writePump(cl *client) {
	defer cl.conn.Close()
	for data := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(cl)
			return
		}
	}
	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Hub) add(cl *client) {
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	log.WithField("clients", n).Debug("order subscriber connected")
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
}

// Clients returns the number of connected subscribers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// broadcast queues the event for every client without blocking. A client
// whose queue is full is dropped.
func (h *Hub) broadcast(event OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("encode order event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		select {
		case cl.send <- data:
		default:
			delete(h.clients, cl)
			close(cl.send)
			log.WithField("type", event.Type).Warn("dropping slow order subscriber")
		}
	}
}

func (h *Hub) OrderCreated(order models.Order) {
	h.broadcast(OrderEvent{Type: TypeOrderCreated, Order: order})
}

func (h *Hub) OrderStatusChanged(order models.Order) {
	h.broadcast(OrderEvent{Type: TypeOrderStatusChanged, Order: order})
}
