package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

const sendBuffer = 16

// Client is one connected websocket session. The gateway drains Send;
// the hub never blocks on a slow client, it drops the message instead.
type Client struct {
	UserID string
	Send   chan Envelope

	closeOnce sync.Once
}

func NewClient(userID string) *Client {
	return &Client{
		UserID: userID,
		Send:   make(chan Envelope, sendBuffer),
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.Send) })
}

// Hub tracks connected clients and routes envelopes from the redis
// channel into their rooms.
type Hub struct {
	subscriber *redis.Client
	logger     logger.Logger

	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub(subscriber *redis.Client, logger logger.Logger) *Hub {
	return &Hub{
		subscriber: subscriber,
		logger:     logger,
		clients:    make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		c.close()
	}
}

// Route delivers the envelope to every client whose room matches.
func (h *Hub) Route(env Envelope) {
	rooms := make(map[string]struct{}, len(env.Rooms))
	for _, r := range env.Rooms {
		rooms[r] = struct{}{}
	}
	_, broadcast := rooms[BroadcastRoom]

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		if !broadcast {
			if _, ok := rooms[UserRoom(c.UserID)]; !ok {
				continue
			}
		}
		select {
		case c.Send <- env:
		default:
			h.logger.Warn("realtime client lagging, message dropped",
				logger.String("user_id", c.UserID),
				logger.String("event", env.Event),
			)
		}
	}
}

// Run subscribes to the redis channel and routes until the context is
// cancelled.
func (h *Hub) Run(ctx context.Context) {
	sub := h.subscriber.Subscribe(ctx, Channel)
	defer sub.Close()

	h.logger.Info("realtime hub started", logger.String("channel", Channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("realtime hub stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				h.logger.Info("realtime hub subscription closed")
				return
			}
			var env Envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				h.logger.Error("failed to decode realtime envelope",
					logger.String("error", err.Error()),
				)
				continue
			}
			h.Route(env)
		}
	}
}
