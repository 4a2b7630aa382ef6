package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// envelope is the cross-instance wire form: the origin hub id lets each
// subscriber skip its own publications.
type envelope struct {
	Origin  string          `json:"origin"`
	ActorID string          `json:"actorId,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// Bridge relays hub events through a Redis pub/sub channel so every app
// instance delivers them to its local observers. Best-effort like the hub.
type Bridge struct {
	rdb     *redis.Client
	channel string
	hub     *Hub
	logger  *logrus.Logger
}

func NewBridge(rdb *redis.Client, channel string, hub *Hub, logger *logrus.Logger) *Bridge {
	b := &Bridge{rdb: rdb, channel: channel, hub: hub, logger: logger}
	hub.SetBridge(b)
	return b
}

func (b *Bridge) Publish(ctx context.Context, env envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		return
	}
	if err := b.rdb.Publish(ctx, b.channel, payload).Err(); err != nil && b.logger != nil {
		b.logger.WithError(err).Warn("relay bridge publish failed")
	}
}

// Run subscribes and forwards foreign events into the hub until ctx ends.
func (b *Bridge) Run(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, b.channel)
	defer func() { _ = sub.Close() }()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				continue
			}
			if env.Origin == b.hub.ID() {
				continue
			}
			b.hub.fromBridge(env.ActorID, env.Data)
		}
	}
}
