package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"patrolwatch/internal/domain"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	// sendQueueSize bounds the per-client outbox. A slow reader loses the
	// oldest queued message first, never the connection.
	sendQueueSize = 32
	pingPeriod    = 54 * time.Second
)

type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// clientCommand is what a connected client may send upstream.
type clientCommand struct {
	Action  string `json:"action"`
	Channel string `json:"channel,omitempty"`
}

type Client struct {
	claim    domain.Claim
	conn     *websocket.Conn
	hub      *Hub
	send     chan Message
	channels map[string]struct{}
	logger   *slog.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewClient(claim domain.Claim, conn *websocket.Conn, h *Hub) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		claim:    claim,
		conn:     conn,
		hub:      h,
		send:     make(chan Message, sendQueueSize),
		channels: make(map[string]struct{}),
		logger:   h.logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (c *Client) Start() {
	go c.readPump()
	go c.writePump()
	c.hub.register <- c
}

func (c *Client) Close() {
	_ = c.conn.Close(websocket.StatusNormalClosure, "closing")
	c.cancel()
}

// mayJoin restricts opt-in subscriptions to the client's own identity.
func (c *Client) mayJoin(channel string) bool {
	switch channel {
	case domain.BroadcastChannel,
		domain.UserChannel(c.claim.OfficerID),
		domain.StationChannel(c.claim.StationID):
		return true
	}
	return false
}

// enqueue never blocks the hub loop. On a full queue the oldest message is
// discarded in favour of the new one.
func (c *Client) enqueue(msg Message) {
	for {
		select {
		case c.send <- msg:
			return
		default:
			select {
			case <-c.send:
			default:
			}
		}
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.Close()
	}()

	for {
		var cmd clientCommand
		if err := wsjson.Read(c.ctx, c.conn, &cmd); err != nil {
			return
		}
		c.handleCommand(cmd)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := wsjson.Write(c.ctx, c.conn, msg); err != nil {
				c.logger.Debug("write failed",
					slog.String("officer_id", c.claim.OfficerID.String()),
					slog.Any("error", err),
				)
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(c.ctx); err != nil {
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Client) handleCommand(cmd clientCommand) {
	switch cmd.Action {
	case "subscribe":
		c.hub.Subscribe(c, cmd.Channel)
	case "unsubscribe":
		c.hub.Unsubscribe(c, cmd.Channel)
	default:
		c.logger.Debug("unknown client command",
			slog.String("officer_id", c.claim.OfficerID.String()),
			slog.String("action", cmd.Action),
		)
	}
}
