// Package realtime fans change events out to connected websocket observers.
// Delivery is best-effort: slow consumers are dropped, nothing is retried,
// and the rest of the system never waits on it.
package realtime

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ozancz/sozluk/internal/application"
)

type message struct {
	data    []byte
	actorID string
}

// Hub tracks connected clients and broadcasts events to everyone except the
// event's originator. It implements application.Relay.
type Hub struct {
	id     string
	logger *logrus.Logger
	bridge *Bridge

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		id:         uuid.NewString(),
		logger:     logger,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 64),
	}
}

// ID identifies this hub instance to the cross-instance bridge.
func (h *Hub) ID() string { return h.id }

// SetBridge attaches the Redis pub/sub bridge; events then reach hubs on
// other instances too.
func (h *Hub) SetBridge(b *Bridge) { h.bridge = b }

// Run owns the client set. The surrounding host cancels ctx on shutdown.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

func (h *Hub) deliver(msg message) {
	for c := range h.clients {
		// Never echo an event back to its originator.
		if msg.actorID != "" && c.userID == msg.actorID {
			continue
		}
		select {
		case c.send <- msg.data:
		default:
			// Slow consumer; drop the connection rather than block the hub.
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// Broadcast queues the event for local delivery and hands it to the bridge.
// It never blocks the caller; when the queue is full the event is dropped.
func (h *Hub) Broadcast(ctx context.Context, ev application.Event) {
	b, err := json.Marshal(ev)
	if err != nil {
		if h.logger != nil {
			h.logger.WithError(err).WithField("event", string(ev.Type)).Warn("event marshal failed")
		}
		return
	}
	select {
	case h.broadcast <- message{data: b, actorID: ev.ActorID}:
	default:
		if h.logger != nil {
			h.logger.WithField("event", string(ev.Type)).Warn("relay queue full, event dropped")
		}
	}
	if h.bridge != nil {
		h.bridge.Publish(ctx, envelope{Origin: h.id, ActorID: ev.ActorID, Data: b})
	}
}

// fromBridge injects an event received from another instance.
func (h *Hub) fromBridge(actorID string, data []byte) {
	select {
	case h.broadcast <- message{data: data, actorID: actorID}:
	default:
	}
}

var _ application.Relay = (*Hub)(nil)
