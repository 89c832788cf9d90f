package notification

import (
	"context"

	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/sunziping2016/YAWeChatTicket/internal/service/ports"
)

// Fanout delivers each notification to every sink (telegram chat,
// realtime push). Sinks are independent; one failing does not stop the
// others.
type Fanout struct {
	sinks []ports.TicketNotifier
}

func NewFanout(sinks ...ports.TicketNotifier) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) TicketIssued(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	for _, s := range f.sinks {
		s.TicketIssued(ctx, user, event, ticket)
	}
}

func (f *Fanout) TicketCancelled(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	for _, s := range f.sinks {
		s.TicketCancelled(ctx, user, event, ticket)
	}
}

func (f *Fanout) TicketCheckedIn(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	for _, s := range f.sinks {
		s.TicketCheckedIn(ctx, user, event, ticket)
	}
}
