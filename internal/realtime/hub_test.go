package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ozancz/sozluk/internal/application"
)

func newTestClient(userID string) *Client {
	return &Client{send: make(chan []byte, 4), userID: userID}
}

func attach(t *testing.T, h *Hub, c *Client) {
	t.Helper()
	select {
	case h.register <- c:
	case <-time.After(time.Second):
		t.Fatal("register timed out")
	}
}

func recv(t *testing.T, c *Client) application.Event {
	t.Helper()
	select {
	case data := <-c.send:
		var ev application.Event
		assert.NoError(t, json.Unmarshal(data, &ev))
		return ev
	case <-time.After(time.Second):
		t.Fatal("expected an event")
		return application.Event{}
	}
}

func TestBroadcastSkipsOriginator(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	liker := newTestClient("user-1")
	other := newTestClient("user-2")
	anon := newTestClient("")
	attach(t, hub, liker)
	attach(t, hub, other)
	attach(t, hub, anon)

	hub.Broadcast(ctx, application.Event{Type: application.EventNewLike, ActorID: "user-1"})

	ev := recv(t, other)
	assert.Equal(t, application.EventNewLike, ev.Type)
	assert.Equal(t, application.EventNewLike, recv(t, anon).Type)

	select {
	case <-liker.send:
		t.Fatal("originator must not receive its own event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBroadcastWithoutActorReachesEveryone(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	a := newTestClient("user-1")
	b := newTestClient("user-2")
	attach(t, hub, a)
	attach(t, hub, b)

	hub.Broadcast(ctx, application.Event{Type: application.EventTopicUpdated})

	assert.Equal(t, application.EventTopicUpdated, recv(t, a).Type)
	assert.Equal(t, application.EventTopicUpdated, recv(t, b).Type)
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	c := newTestClient("user-1")
	attach(t, hub, c)

	select {
	case hub.unregister <- c:
	case <-time.After(time.Second):
		t.Fatal("unregister timed out")
	}

	// The hub closes the send channel on unregister.
	select {
	case _, ok := <-c.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel should be closed")
	}
}
