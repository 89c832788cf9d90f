package domain

import "time"

type Event struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ShortName        string    `json:"short_name"`
	Place            string    `json:"place"`
	Description      string    `json:"description"`
	Excerpt          string    `json:"excerpt"`
	BeginTime        time.Time `json:"begin_time"`
	EndTime          time.Time `json:"end_time"`
	BookBeginTime    time.Time `json:"book_begin_time"`
	BookEndTime      time.Time `json:"book_end_time"`
	TotalTickets     int       `json:"total_tickets"`
	RemainingTickets int       `json:"remaining_tickets"`
	CheckedInTickets int       `json:"checked_in_tickets"`
	Published        bool      `json:"published"`
	CreatorID        string    `json:"creator_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Bookable reports whether the event admits reservations at the given
// instant. The authoritative check is the conditional UPDATE in
// EventRepository.TryReserveCapacity; this one is for display and bot replies.
func (e *Event) Bookable(now time.Time) bool {
	return e.Published &&
		e.RemainingTickets > 0 &&
		!now.Before(e.BookBeginTime) &&
		!now.After(e.BookEndTime)
}

type EventCounters struct {
	TotalTickets     int `json:"total_tickets"`
	RemainingTickets int `json:"remaining_tickets"`
	CheckedInTickets int `json:"checked_in_tickets"`
}

type EventDetails struct {
	Event         Event    `json:"event"`
	ActiveTickets int      `json:"active_tickets"`
	Tickets       []Ticket `json:"tickets"`
}

// CapacityDrift is one violation of the capacity invariant: the number
// of non-cancelled tickets for an event no longer matches
// total_tickets - remaining_tickets. Such rows appear only when a crash
// or a failed compensation interrupted a reservation mid-flight.
type CapacityDrift struct {
	EventID          string `json:"event_id"`
	TotalTickets     int    `json:"total_tickets"`
	RemainingTickets int    `json:"remaining_tickets"`
	ActiveTickets    int    `json:"active_tickets"`
}

type CreateEventInput struct {
	Name          string
	ShortName     string
	Place         string
	Description   string
	Excerpt       string
	BeginTime     time.Time
	EndTime       time.Time
	BookBeginTime time.Time
	BookEndTime   time.Time
	TotalTickets  int
}
