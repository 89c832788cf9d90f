package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sunziping2016/YAWeChatTicket/internal/auth"
	"github.com/sunziping2016/YAWeChatTicket/internal/clock"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/sunziping2016/YAWeChatTicket/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const entryTokenTTL = 2 * time.Minute

// ReservationService is the single code path for issuing, cancelling
// and checking in tickets. Every transport adapter (REST, bot,
// realtime) funnels through it; it holds no locks of its own, all
// serialization lives in the two atomic store primitives.
type ReservationService struct {
	tickets  ports.TicketStore
	events   ports.EventStore
	users    ports.UserRepo
	sessions ports.EntrySessionStore
	notifier ports.TicketNotifier
	clock    clock.Clock
	logger   logger.Logger
}

func NewReservationService(
	tickets ports.TicketStore,
	events ports.EventStore,
	users ports.UserRepo,
	sessions ports.EntrySessionStore,
	notifier ports.TicketNotifier,
	clk clock.Clock,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		tickets:  tickets,
		events:   events,
		users:    users,
		sessions: sessions,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

// Reserve issues one ticket for the caller. Two-phase: the tentative
// ticket insert claims (owner, event) uniqueness first, then the
// conditional capacity decrement confirms it. Uniqueness goes first so
// a duplicate request never touches the counter; the price is the
// compensating delete when the capacity step refuses.
func (s *ReservationService) Reserve(ctx context.Context, caller auth.Identity, eventID string) (*domain.Ticket, error) {
	if caller.UserID == "" || !caller.Can(domain.CapHoldTickets) {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	ticket := &domain.Ticket{
		ID:        uuid.New().String(),
		EventID:   eventID,
		OwnerID:   caller.UserID,
		Status:    domain.TicketStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.tickets.TryCreate(ctx, ticket); err != nil {
		if errors.Is(err, domain.ErrAlreadyTicketed) {
			return nil, err
		}
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	if err := s.events.TryReserveCapacity(ctx, eventID, now); err != nil {
		// The tentative row must go, or its uniqueness claim would
		// block the owner from ever retrying. Hard delete: the ticket
		// was never valid.
		if delErr := s.tickets.Delete(ctx, ticket.ID); delErr != nil {
			s.logger.Error("compensating delete failed, ticket orphaned until sweep",
				logger.String("ticket_id", ticket.ID),
				logger.String("event_id", eventID),
				logger.String("error", delErr.Error()),
			)
		}
		if errors.Is(err, domain.ErrEventUnavailable) {
			return nil, domain.ErrEventUnavailable
		}
		return nil, fmt.Errorf("reserve capacity: %w", err)
	}

	s.logger.Info("ticket issued",
		logger.String("ticket_id", ticket.ID),
		logger.String("event_id", eventID),
		logger.String("owner_id", caller.UserID),
	)

	go s.notify(context.WithoutCancel(ctx), ticket, s.notifier.TicketIssued)

	return ticket, nil
}

// Cancel voids the caller's ticket and returns its seat. Idempotent
// once cancelled. Capacity is released before the status flips so a
// crash in between leaves the counter low, never over-released.
func (s *ReservationService) Cancel(ctx context.Context, caller auth.Identity, ticketID string) error {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if ticket.OwnerID != caller.UserID && !caller.Can(domain.CapAdmin) {
		return domain.ErrForbidden
	}

	switch ticket.Status {
	case domain.TicketStatusCancelled:
		return nil
	case domain.TicketStatusCheckedIn:
		return domain.ErrTicketCheckedIn
	}

	// Two concurrent cancels of the same active ticket can both reach
	// this point and release twice; the status flip below then makes
	// the second cancel a no-op. The resulting counter drift is caught
	// by the capacity audit. Keying the release on winning the flip
	// would close the window but inverts the release-before-mark
	// ordering above.
	if err := s.events.ReleaseCapacity(ctx, ticket.EventID); err != nil {
		return fmt.Errorf("release capacity: %w", err)
	}
	if err := s.tickets.Cancel(ctx, ticketID); err != nil {
		return fmt.Errorf("cancel ticket: %w", err)
	}

	s.logger.Info("ticket cancelled",
		logger.String("ticket_id", ticketID),
		logger.String("event_id", ticket.EventID),
		logger.String("owner_id", ticket.OwnerID),
	)

	go s.notify(context.WithoutCancel(ctx), ticket, s.notifier.TicketCancelled)

	return nil
}

// CancelByEvent resolves the caller's live ticket for the event and
// cancels it; the form the bot's refund command uses.
func (s *ReservationService) CancelByEvent(ctx context.Context, caller auth.Identity, eventID string) error {
	ticket, err := s.tickets.GetByOwnerAndEvent(ctx, caller.UserID, eventID)
	if err != nil {
		return err
	}
	return s.Cancel(ctx, caller, ticket.ID)
}

// CheckIn admits the ticket holder at the door. Organizer-only: the
// caller must own the event or be an administrator. The active ->
// checked_in transition is a single conditional update, so of two
// concurrent scans exactly one admits.
func (s *ReservationService) CheckIn(ctx context.Context, caller auth.Identity, ticketID string) (*domain.EventCounters, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, ticket.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.CreatorID != caller.UserID && !caller.Can(domain.CapAdmin) {
		return nil, domain.ErrForbidden
	}

	if err := s.tickets.CheckIn(ctx, ticketID); err != nil {
		return nil, err
	}

	// Sequential with the status flip: the checked-in counter is not
	// part of the capacity invariant.
	counters, err := s.events.IncrementCheckedIn(ctx, ticket.EventID)
	if err != nil {
		return nil, fmt.Errorf("increment checked in: %w", err)
	}

	s.logger.Info("ticket checked in",
		logger.String("ticket_id", ticketID),
		logger.String("event_id", ticket.EventID),
	)

	go s.notify(context.WithoutCancel(ctx), ticket, s.notifier.TicketCheckedIn)

	return counters, nil
}

// CreateEntryToken mints a short-lived token the owner presents at the
// door instead of the raw ticket id.
func (s *ReservationService) CreateEntryToken(ctx context.Context, caller auth.Identity, ticketID string) (string, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return "", err
	}
	if ticket.OwnerID != caller.UserID {
		return "", domain.ErrForbidden
	}
	if ticket.Status != domain.TicketStatusActive {
		if ticket.Status == domain.TicketStatusCheckedIn {
			return "", domain.ErrTicketCheckedIn
		}
		return "", domain.ErrTicketNotActive
	}

	token := uuid.New().String()
	if err := s.sessions.Save(ctx, token, ticketID, entryTokenTTL); err != nil {
		return "", fmt.Errorf("save entry token: %w", err)
	}

	return token, nil
}

// CheckInByToken consumes an entry token and runs the regular check-in
// path. The token is taken atomically, so it admits at most once even
// if scanned twice.
func (s *ReservationService) CheckInByToken(ctx context.Context, caller auth.Identity, token string) (*domain.EventCounters, error) {
	ticketID, err := s.sessions.Take(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.CheckIn(ctx, caller, ticketID)
}

func (s *ReservationService) ListByOwner(ctx context.Context, caller auth.Identity) ([]*domain.Ticket, error) {
	if caller.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.tickets.ListByOwner(ctx, caller.UserID)
}

// AuditCapacity reports capacity-invariant violations. It never
// repairs anything; drift rows are for the operator.
func (s *ReservationService) AuditCapacity(ctx context.Context) ([]*domain.CapacityDrift, error) {
	drift, err := s.events.FindCapacityDrift(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit capacity: %w", err)
	}
	return drift, nil
}

func (s *ReservationService) notify(
	ctx context.Context,
	ticket *domain.Ticket,
	fn func(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket),
) {
	user, err := s.users.GetByID(ctx, ticket.OwnerID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", ticket.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.events.GetByID(ctx, ticket.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", ticket.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	fn(ctx, user, event, ticket)
}
