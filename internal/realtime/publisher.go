package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Channel is the redis pub/sub channel the hub subscribes to. Routing
// goes through redis so every process instance pushes to its own
// connected clients.
const Channel = "realtime:events"

const BroadcastRoom = "users"

func UserRoom(userID string) string {
	return "user:" + userID
}

// Envelope is one push message: a named event plus the rooms that
// should receive it.
type Envelope struct {
	Rooms   []string        `json:"rooms"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Publisher fans envelopes out through redis. Fire-and-forget:
// failures are logged and dropped, at-most-once is acceptable here.
type Publisher struct {
	client *redis.Client
	logger logger.Logger
}

func NewPublisher(client *redis.Client, logger logger.Logger) *Publisher {
	return &Publisher{client: client, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, rooms []string, event string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to marshal realtime payload",
			logger.String("event", event),
			logger.String("error", err.Error()),
		)
		return
	}

	env, err := json.Marshal(Envelope{Rooms: rooms, Event: event, Payload: body})
	if err != nil {
		p.logger.Error("failed to marshal realtime envelope",
			logger.String("event", event),
			logger.String("error", err.Error()),
		)
		return
	}

	if err := p.client.Publish(ctx, Channel, env).Err(); err != nil {
		p.logger.Error("failed to publish realtime envelope",
			logger.String("event", event),
			logger.String("error", err.Error()),
		)
	}
}

// Notifier adapts the publisher to the ticket notification sink:
// reservation outcomes go to the owner's room.
type Notifier struct {
	publisher *Publisher
}

func NewNotifier(publisher *Publisher) *Notifier {
	return &Notifier{publisher: publisher}
}

func (n *Notifier) TicketIssued(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	n.publish(ctx, user, "ticket:issued", ticket)
}

func (n *Notifier) TicketCancelled(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	n.publish(ctx, user, "ticket:cancelled", ticket)
}

func (n *Notifier) TicketCheckedIn(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	n.publish(ctx, user, "ticket:checked_in", ticket)
}

func (n *Notifier) publish(ctx context.Context, user *domain.User, event string, ticket *domain.Ticket) {
	n.publisher.Publish(ctx, []string{UserRoom(user.ID)}, event, ticket)
}

// EventPublished announces a newly opened event to everyone.
func (n *Notifier) EventPublished(ctx context.Context, event *domain.Event) {
	n.publisher.Publish(ctx, []string{BroadcastRoom}, "event:published", event)
}
