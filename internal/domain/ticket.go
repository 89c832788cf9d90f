package domain

import "time"

type TicketStatus string

const (
	TicketStatusActive    TicketStatus = "active"
	TicketStatusCancelled TicketStatus = "cancelled"
	TicketStatusCheckedIn TicketStatus = "checked_in"
)

// Ticket grants one user admission to one event. At most one
// non-cancelled ticket may exist per (owner, event) pair; the
// constraint is enforced by a partial unique index, not by locking.
type Ticket struct {
	ID        string       `json:"id"`
	EventID   string       `json:"event_id"`
	OwnerID   string       `json:"owner_id"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
