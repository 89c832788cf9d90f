package ports

import (
	"context"

	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
)

// TicketNotifier pushes reservation outcomes to the owner. Calls are
// fire-and-forget: implementations log failures and never return them.
type TicketNotifier interface {
	TicketIssued(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket)
	TicketCancelled(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket)
	TicketCheckedIn(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket)
}
