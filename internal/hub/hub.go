package hub

import (
	"context"
	"log/slog"
	"sync"

	"patrolwatch/internal/domain"
)

// Hub fans out realtime events to connected clients by channel name.
// A client is always a member of its own user channel, its station channel
// and the broadcast channel; further memberships are opt-in via subscribe
// messages.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]struct{}
	channels map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	events     chan domain.Event

	logger *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		channels:   make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan domain.Event, 256),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("hub STARTED")
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case ev := <-h.events:
			h.deliver(ev)
		case <-ctx.Done():
			h.logger.Info("hub STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		}
	}
}

// Dispatch hands an event to the fan-out loop. It never blocks the caller:
// when the loop is saturated the event is dropped, position updates and
// notifications are perishable.
func (h *Hub) Dispatch(ev domain.Event) {
	select {
	case h.events <- ev:
	default:
		h.logger.Warn("hub event dropped", slog.String("type", string(ev.Type)))
	}
}

// Subscribe adds the client to a channel. Clients may only join their own
// user and station channels besides broadcast.
func (h *Hub) Subscribe(c *Client, channel string) bool {
	if !c.mayJoin(channel) {
		h.logger.Warn("subscribe denied",
			slog.String("officer_id", c.claim.OfficerID.String()),
			slog.String("channel", channel),
		)
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.joinLocked(c, channel)
	return true
}

func (h *Hub) Unsubscribe(c *Client, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c, channel)
}

// ClientCount reports connected clients, used by the health endpoint.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown closes every connection. Call after the Run loop has exited.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()
	for _, c := range clients {
		c.Close()
	}
}

func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	h.joinLocked(c, domain.UserChannel(c.claim.OfficerID))
	h.joinLocked(c, domain.StationChannel(c.claim.StationID))
	h.joinLocked(c, domain.BroadcastChannel)
	h.logger.Info("client connected",
		slog.String("officer_id", c.claim.OfficerID.String()),
		slog.Int("clients", len(h.clients)),
	)
}

func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	for channel := range c.channels {
		h.leaveLocked(c, channel)
	}
	close(c.send)
	h.logger.Info("client disconnected",
		slog.String("officer_id", c.claim.OfficerID.String()),
		slog.Int("clients", len(h.clients)),
	)
}

func (h *Hub) joinLocked(c *Client, channel string) {
	members, ok := h.channels[channel]
	if !ok {
		members = make(map[*Client]struct{})
		h.channels[channel] = members
	}
	members[c] = struct{}{}
	c.channels[channel] = struct{}{}
}

func (h *Hub) leaveLocked(c *Client, channel string) {
	if members, ok := h.channels[channel]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.channels, channel)
		}
	}
	delete(c.channels, channel)
}

func (h *Hub) deliver(ev domain.Event) {
	msg := Message{Type: string(ev.Type), Data: ev.Data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[*Client]struct{})
	for _, channel := range ev.Channels {
		for c := range h.channels[channel] {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			c.enqueue(msg)
		}
	}
}
