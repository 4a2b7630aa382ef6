package application

import "context"

// EventType names the realtime events observers can subscribe to.
type EventType string

const (
	EventNewEntry       EventType = "new_entry"
	EventNewComment     EventType = "new_comment"
	EventNewLike        EventType = "new_like"
	EventEntryUpdated   EventType = "entry_updated"
	EventCommentUpdated EventType = "comment_updated"
	EventTopicUpdated   EventType = "topic_updated"
)

// Event carries the affected entity to connected observers. ActorID marks
// the originating user so the relay can skip their own connections.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
	ActorID string    `json:"actorId,omitempty"`
}

// Relay broadcasts change events to connected observers. Fire-and-forget:
// no delivery guarantee, and core correctness must never depend on it.
type Relay interface {
	Broadcast(ctx context.Context, ev Event)
}

// NopRelay drops every event. Used when no hub is wired.
type NopRelay struct{}

func (NopRelay) Broadcast(context.Context, Event) {}
