package ports

import (
	"context"

	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
)

// TicketStore is the reservation store. TryCreate must be a single
// conditional insert at the storage layer; it returns
// *domain.AlreadyTicketedError when a non-cancelled ticket for the
// (owner, event) pair already exists.
type TicketStore interface {
	TryCreate(ctx context.Context, t *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	GetByOwnerAndEvent(ctx context.Context, ownerID, eventID string) (*domain.Ticket, error)
	Delete(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	CheckIn(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Ticket, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error)
}
