package hub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"patrolwatch/internal/domain"

	"github.com/google/uuid"
)

func testClient(h *Hub) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		claim: domain.Claim{
			OfficerID: uuid.New(),
			StationID: uuid.New(),
			Role:      "officer",
		},
		hub:      h,
		send:     make(chan Message, sendQueueSize),
		channels: make(map[string]struct{}),
		logger:   h.logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func testHub(t *testing.T) *Hub {
	t.Helper()
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHubAutoSubscribe(t *testing.T) {
	h := testHub(t)
	c := testClient(h)

	h.addClient(c)

	for _, channel := range []string{
		domain.UserChannel(c.claim.OfficerID),
		domain.StationChannel(c.claim.StationID),
		domain.BroadcastChannel,
	} {
		if _, ok := c.channels[channel]; !ok {
			t.Errorf("expected membership in %q", channel)
		}
		if _, ok := h.channels[channel][c]; !ok {
			t.Errorf("hub missing %q member", channel)
		}
	}
	if got := h.ClientCount(); got != 1 {
		t.Errorf("ClientCount = %d, want 1", got)
	}
}

func TestHubSubscribeAuthorization(t *testing.T) {
	h := testHub(t)
	c := testClient(h)
	h.addClient(c)

	if h.Subscribe(c, domain.UserChannel(uuid.New())) {
		t.Error("subscribed to a foreign user channel")
	}
	if h.Subscribe(c, domain.StationChannel(uuid.New())) {
		t.Error("subscribed to a foreign station channel")
	}
	if !h.Subscribe(c, domain.UserChannel(c.claim.OfficerID)) {
		t.Error("own user channel refused")
	}
}

func TestHubDeliverByChannel(t *testing.T) {
	h := testHub(t)
	a := testClient(h)
	b := testClient(h)
	h.addClient(a)
	h.addClient(b)

	ev := domain.Event{
		Type:     domain.EventAlertCreated,
		Channels: []string{domain.StationChannel(a.claim.StationID)},
		Data:     json.RawMessage(`{"id":"x"}`),
	}
	h.deliver(ev)

	select {
	case msg := <-a.send:
		if msg.Type != string(domain.EventAlertCreated) {
			t.Errorf("type = %q", msg.Type)
		}
	default:
		t.Fatal("station member got nothing")
	}
	select {
	case <-b.send:
		t.Fatal("other station got the event")
	default:
	}
}

func TestHubDeliverDeduplicates(t *testing.T) {
	h := testHub(t)
	c := testClient(h)
	h.addClient(c)

	ev := domain.Event{
		Type: domain.EventNotificationCreated,
		Channels: []string{
			domain.UserChannel(c.claim.OfficerID),
			domain.BroadcastChannel,
		},
		Data: json.RawMessage(`{}`),
	}
	h.deliver(ev)

	if got := len(c.send); got != 1 {
		t.Errorf("queued %d copies, want 1", got)
	}
}

func TestClientEnqueueDropsOldest(t *testing.T) {
	h := testHub(t)
	c := testClient(h)

	for i := 0; i < sendQueueSize+5; i++ {
		payload, _ := json.Marshal(i)
		c.enqueue(Message{Type: "seq", Data: payload})
	}

	if got := len(c.send); got != sendQueueSize {
		t.Fatalf("queue length = %d, want %d", got, sendQueueSize)
	}

	first := <-c.send
	var seq int
	if err := json.Unmarshal(first.Data, &seq); err != nil {
		t.Fatal(err)
	}
	if seq != 5 {
		t.Errorf("oldest surviving message = %d, want 5", seq)
	}
}

func TestHubRemoveClientClearsMembership(t *testing.T) {
	h := testHub(t)
	c := testClient(h)
	h.addClient(c)
	h.removeClient(c)

	if got := h.ClientCount(); got != 0 {
		t.Errorf("ClientCount = %d, want 0", got)
	}
	if len(h.channels) != 0 {
		t.Errorf("channels not garbage collected: %d left", len(h.channels))
	}
	if _, ok := <-c.send; ok {
		t.Error("send channel still open")
	}
}
