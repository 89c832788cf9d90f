package dto

import (
	"time"

	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
)

type EventResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ShortName        string `json:"short_name"`
	Place            string `json:"place"`
	Description      string `json:"description"`
	Excerpt          string `json:"excerpt"`
	BeginTime        string `json:"begin_time"`
	EndTime          string `json:"end_time"`
	BookBeginTime    string `json:"book_begin_time"`
	BookEndTime      string `json:"book_end_time"`
	TotalTickets     int    `json:"total_tickets"`
	RemainingTickets int    `json:"remaining_tickets"`
	CheckedInTickets int    `json:"checked_in_tickets"`
	Published        bool   `json:"published"`
	CreatorID        string `json:"creator_id"`
	CreatedAt        string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event         EventResponse    `json:"event"`
	ActiveTickets int              `json:"active_tickets"`
	Tickets       []TicketResponse `json:"tickets"`
}

type TicketResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	OwnerID   string `json:"owner_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ReserveResponse is the success envelope of the reservation wire
// contract.
type ReserveResponse struct {
	Status      string         `json:"status"`
	Reservation TicketResponse `json:"reservation"`
}

type EntryTokenResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

type CheckInResponse struct {
	Status   string               `json:"status"`
	Counters domain.EventCounters `json:"counters"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Caps           int    `json:"caps"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// ErrorResponse carries a machine-readable kind next to the message;
// already_reserved failures also include the existing reservation so
// clients can render it.
type ErrorResponse struct {
	Error       string          `json:"error"`
	Kind        string          `json:"kind"`
	Reservation *TicketResponse `json:"reservation,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		Name:             e.Name,
		ShortName:        e.ShortName,
		Place:            e.Place,
		Description:      e.Description,
		Excerpt:          e.Excerpt,
		BeginTime:        e.BeginTime.Format(time.RFC3339),
		EndTime:          e.EndTime.Format(time.RFC3339),
		BookBeginTime:    e.BookBeginTime.Format(time.RFC3339),
		BookEndTime:      e.BookEndTime.Format(time.RFC3339),
		TotalTickets:     e.TotalTickets,
		RemainingTickets: e.RemainingTickets,
		CheckedInTickets: e.CheckedInTickets,
		Published:        e.Published,
		CreatorID:        e.CreatorID,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	tickets := make([]TicketResponse, 0, len(d.Tickets))
	for i := range d.Tickets {
		tickets = append(tickets, ToTicketResponse(&d.Tickets[i]))
	}

	return EventDetailsResponse{
		Event:         ToEventResponse(&d.Event),
		ActiveTickets: d.ActiveTickets,
		Tickets:       tickets,
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:        t.ID,
		EventID:   t.EventID,
		OwnerID:   t.OwnerID,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Caps:           u.Caps,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
