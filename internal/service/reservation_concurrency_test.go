package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunziping2016/YAWeChatTicket/internal/auth"
	"github.com/sunziping2016/YAWeChatTicket/internal/clock"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
)

// The fakes below reproduce the conditional-update semantics of the
// Postgres store under a single mutex, so the admission properties can
// be hammered with real goroutines.

type memState struct {
	mu          sync.Mutex
	events      map[string]*domain.Event
	tickets     map[string]*domain.Ticket
	failDeletes int
}

func newMemState() *memState {
	return &memState{
		events:  make(map[string]*domain.Event),
		tickets: make(map[string]*domain.Ticket),
	}
}

type memTicketStore struct{ st *memState }

func (s *memTicketStore) TryCreate(_ context.Context, t *domain.Ticket) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if _, ok := s.st.events[t.EventID]; !ok {
		// Mirrors the foreign key on tickets.event_id.
		return domain.ErrEventNotFound
	}
	for _, existing := range s.st.tickets {
		if existing.EventID == t.EventID && existing.OwnerID == t.OwnerID &&
			existing.Status != domain.TicketStatusCancelled {
			cp := *existing
			return &domain.AlreadyTicketedError{Existing: &cp}
		}
	}
	cp := *t
	s.st.tickets[t.ID] = &cp
	return nil
}

func (s *memTicketStore) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	t, ok := s.st.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *memTicketStore) GetByOwnerAndEvent(_ context.Context, ownerID, eventID string) (*domain.Ticket, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	for _, t := range s.st.tickets {
		if t.OwnerID == ownerID && t.EventID == eventID && t.Status != domain.TicketStatusCancelled {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrTicketNotFound
}

func (s *memTicketStore) Delete(_ context.Context, id string) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if s.st.failDeletes > 0 {
		s.st.failDeletes--
		return errors.New("connection reset")
	}
	delete(s.st.tickets, id)
	return nil
}

func (s *memTicketStore) Cancel(_ context.Context, id string) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	t, ok := s.st.tickets[id]
	if !ok {
		return domain.ErrTicketNotFound
	}
	switch t.Status {
	case domain.TicketStatusActive:
		t.Status = domain.TicketStatusCancelled
		return nil
	case domain.TicketStatusCancelled:
		return nil
	default:
		return domain.ErrTicketNotActive
	}
}

func (s *memTicketStore) CheckIn(_ context.Context, id string) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	t, ok := s.st.tickets[id]
	if !ok {
		return domain.ErrTicketNotFound
	}
	switch t.Status {
	case domain.TicketStatusActive:
		t.Status = domain.TicketStatusCheckedIn
		return nil
	case domain.TicketStatusCheckedIn:
		return domain.ErrTicketCheckedIn
	default:
		return domain.ErrTicketNotActive
	}
}

func (s *memTicketStore) ListByOwner(_ context.Context, ownerID string) ([]*domain.Ticket, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	var out []*domain.Ticket
	for _, t := range s.st.tickets {
		if t.OwnerID == ownerID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memTicketStore) ListByEvent(_ context.Context, eventID string) ([]*domain.Ticket, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	var out []*domain.Ticket
	for _, t := range s.st.tickets {
		if t.EventID == eventID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memEventStore struct{ st *memState }

func (s *memEventStore) Create(_ context.Context, e *domain.Event) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	cp := *e
	s.st.events[e.ID] = &cp
	return nil
}

func (s *memEventStore) GetByID(_ context.Context, id string) (*domain.Event, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	e, ok := s.st.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *memEventStore) GetDetails(_ context.Context, _ string) (*domain.EventDetails, error) {
	return nil, domain.ErrEventNotFound
}

func (s *memEventStore) List(_ context.Context) ([]*domain.Event, error) { return nil, nil }

func (s *memEventStore) ListBookable(_ context.Context, _ time.Time, _ int) ([]*domain.Event, error) {
	return nil, nil
}

func (s *memEventStore) FindBookableByName(_ context.Context, _ string, _ time.Time) (*domain.Event, error) {
	return nil, domain.ErrEventNotFound
}

func (s *memEventStore) SetPublished(_ context.Context, id string, published bool) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if e, ok := s.st.events[id]; ok {
		e.Published = published
	}
	return nil
}

func (s *memEventStore) SoftDelete(_ context.Context, id string) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	delete(s.st.events, id)
	return nil
}

func (s *memEventStore) TryReserveCapacity(_ context.Context, eventID string, now time.Time) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	e, ok := s.st.events[eventID]
	if !ok {
		return domain.ErrEventUnavailable
	}
	if !e.Published || e.RemainingTickets <= 0 ||
		now.Before(e.BookBeginTime) || now.After(e.BookEndTime) {
		return domain.ErrEventUnavailable
	}
	e.RemainingTickets--
	return nil
}

func (s *memEventStore) ReleaseCapacity(_ context.Context, eventID string) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	e, ok := s.st.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if e.RemainingTickets < e.TotalTickets {
		e.RemainingTickets++
	}
	return nil
}

func (s *memEventStore) IncrementCheckedIn(_ context.Context, eventID string) (*domain.EventCounters, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	e, ok := s.st.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	e.CheckedInTickets++
	return &domain.EventCounters{
		TotalTickets:     e.TotalTickets,
		RemainingTickets: e.RemainingTickets,
		CheckedInTickets: e.CheckedInTickets,
	}, nil
}

func (s *memEventStore) FindCapacityDrift(_ context.Context) ([]*domain.CapacityDrift, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	var out []*domain.CapacityDrift
	for id, e := range s.st.events {
		live := 0
		for _, t := range s.st.tickets {
			if t.EventID == id && t.Status != domain.TicketStatusCancelled {
				live++
			}
		}
		if live != e.TotalTickets-e.RemainingTickets {
			out = append(out, &domain.CapacityDrift{
				EventID:          id,
				TotalTickets:     e.TotalTickets,
				RemainingTickets: e.RemainingTickets,
				ActiveTickets:    live,
			})
		}
	}
	return out, nil
}

type memUserRepo struct{}

func (memUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }
func (memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}
func (memUserRepo) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (memUserRepo) GetByTelegramChatID(_ context.Context, _ int64) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (memUserRepo) List(_ context.Context) ([]*domain.User, error) { return nil, nil }

type silentNotifier struct{}

func (silentNotifier) TicketIssued(context.Context, *domain.User, *domain.Event, *domain.Ticket)    {}
func (silentNotifier) TicketCancelled(context.Context, *domain.User, *domain.Event, *domain.Ticket) {}
func (silentNotifier) TicketCheckedIn(context.Context, *domain.User, *domain.Event, *domain.Ticket) {}

type memSessionStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func (s *memSessionStore) Save(_ context.Context, token, ticketID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens == nil {
		s.tokens = make(map[string]string)
	}
	s.tokens[token] = ticketID
	return nil
}

func (s *memSessionStore) Take(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticketID, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrEntryTokenInvalid
	}
	delete(s.tokens, token)
	return ticketID, nil
}

func newMemReservationService(t *testing.T, st *memState, now time.Time) *ReservationService {
	t.Helper()
	return NewReservationService(
		&memTicketStore{st: st},
		&memEventStore{st: st},
		memUserRepo{},
		&memSessionStore{},
		silentNotifier{},
		clock.NewFixed(now),
		newTestLogger(t),
	)
}

func seedEvent(st *memState, id string, total int, now time.Time) {
	st.events[id] = &domain.Event{
		ID:               id,
		Name:             id,
		TotalTickets:     total,
		RemainingTickets: total,
		Published:        true,
		BookBeginTime:    now.Add(-time.Hour),
		BookEndTime:      now.Add(time.Hour),
		CreatorID:        "org",
	}
}

func requireNoDrift(t *testing.T, svc *ReservationService) {
	t.Helper()
	drift, err := svc.AuditCapacity(context.Background())
	require.NoError(t, err)
	require.Empty(t, drift)
}

func TestReserve_SameOwnerConcurrent_OneWinner(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := newMemState()
	seedEvent(st, "e1", 100, now)
	svc := newMemReservationService(t, st, now)

	const attempts = 32
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Reserve(context.Background(), holder, "e1")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyTicketed)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 99, st.events["e1"].RemainingTickets)
	requireNoDrift(t, svc)
}

func TestReserve_CapacityBound(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := newMemState()
	seedEvent(st, "e1", 5, now)
	svc := newMemReservationService(t, st, now)

	const owners = 40
	errs := make([]error, owners)
	var wg sync.WaitGroup
	for i := 0; i < owners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			caller := auth.Identity{UserID: string(rune('A' + i)), Caps: domain.CapHoldTickets}
			_, errs[i] = svc.Reserve(context.Background(), caller, "e1")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrEventUnavailable)
		}
	}
	assert.Equal(t, 5, wins)
	assert.Equal(t, 0, st.events["e1"].RemainingTickets)
	requireNoDrift(t, svc)
}

func TestReserve_LastSeatTwoOwners(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := newMemState()
	seedEvent(st, "e1", 1, now)
	svc := newMemReservationService(t, st, now)

	a := auth.Identity{UserID: "alice", Caps: domain.CapHoldTickets}
	b := auth.Identity{UserID: "bob", Caps: domain.CapHoldTickets}

	var wg sync.WaitGroup
	var errA, errB error
	wg.Add(2)
	go func() { defer wg.Done(); _, errA = svc.Reserve(context.Background(), a, "e1") }()
	go func() { defer wg.Done(); _, errB = svc.Reserve(context.Background(), b, "e1") }()
	wg.Wait()

	if errA == nil {
		assert.ErrorIs(t, errB, domain.ErrEventUnavailable)
	} else {
		assert.ErrorIs(t, errA, domain.ErrEventUnavailable)
		assert.NoError(t, errB)
	}
	// The loser's tentative row must have been deleted.
	assert.Len(t, st.tickets, 1)
	requireNoDrift(t, svc)
}

func TestReserve_AfterCancel_Rebooks(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := newMemState()
	seedEvent(st, "e1", 1, now)
	svc := newMemReservationService(t, st, now)

	first, err := svc.Reserve(context.Background(), holder, "e1")
	require.NoError(t, err)

	_, err = svc.Reserve(context.Background(), holder, "e1")
	require.ErrorIs(t, err, domain.ErrAlreadyTicketed)

	require.NoError(t, svc.Cancel(context.Background(), holder, first.ID))

	second, err := svc.Reserve(context.Background(), holder, "e1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	requireNoDrift(t, svc)
}

func TestReserve_ClosedWindow_LeavesNoRow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := newMemState()
	seedEvent(st, "e1", 10, now)
	st.events["e1"].BookEndTime = now.Add(-time.Minute)
	svc := newMemReservationService(t, st, now)

	_, err := svc.Reserve(context.Background(), holder, "e1")

	assert.ErrorIs(t, err, domain.ErrEventUnavailable)
	assert.Empty(t, st.tickets)
	requireNoDrift(t, svc)
}

func TestReserve_UnknownEvent_LeavesNoRow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := newMemState()
	svc := newMemReservationService(t, st, now)

	_, err := svc.Reserve(context.Background(), holder, "ghost")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.Empty(t, st.tickets)
}

func TestReserve_FailedCompensation_SurfacesAsDrift(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := newMemState()
	seedEvent(st, "e1", 1, now)
	svc := newMemReservationService(t, st, now)

	// Fill the event, then fail the compensating delete of the next
	// refused reservation. The orphaned row shows up in the audit.
	_, err := svc.Reserve(context.Background(), holder, "e1")
	require.NoError(t, err)

	st.failDeletes = 1
	other := auth.Identity{UserID: "u2", Caps: domain.CapHoldTickets}
	_, err = svc.Reserve(context.Background(), other, "e1")
	require.ErrorIs(t, err, domain.ErrEventUnavailable)

	drift, err := svc.AuditCapacity(context.Background())
	require.NoError(t, err)
	require.Len(t, drift, 1)
	assert.Equal(t, "e1", drift[0].EventID)
	assert.Equal(t, 2, drift[0].ActiveTickets)
}

func TestCheckIn_ConcurrentScans_OneAdmits(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := newMemState()
	seedEvent(st, "e1", 10, now)
	svc := newMemReservationService(t, st, now)

	ticket, err := svc.Reserve(context.Background(), holder, "e1")
	require.NoError(t, err)

	organizer := auth.Identity{UserID: "org", Caps: domain.CapPublish}
	const scans = 8
	errs := make([]error, scans)
	var wg sync.WaitGroup
	for i := 0; i < scans; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CheckIn(context.Background(), organizer, ticket.ID)
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, err := range errs {
		if err == nil {
			admitted++
		} else {
			assert.ErrorIs(t, err, domain.ErrTicketCheckedIn)
		}
	}
	assert.Equal(t, 1, admitted)
	assert.Equal(t, 1, st.events["e1"].CheckedInTickets)
}

func TestEntryToken_AdmitsAtMostOnce(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := newMemState()
	seedEvent(st, "e1", 10, now)
	svc := newMemReservationService(t, st, now)

	ticket, err := svc.Reserve(context.Background(), holder, "e1")
	require.NoError(t, err)

	token, err := svc.CreateEntryToken(context.Background(), holder, ticket.ID)
	require.NoError(t, err)

	organizer := auth.Identity{UserID: "org", Caps: domain.CapPublish}
	_, err = svc.CheckInByToken(context.Background(), organizer, token)
	require.NoError(t, err)

	_, err = svc.CheckInByToken(context.Background(), organizer, token)
	assert.ErrorIs(t, err, domain.ErrEntryTokenInvalid)
}

// gatedTicketStore parks callers at the status flip so a test can
// force two cancels to both observe the ticket active.
type gatedTicketStore struct {
	*memTicketStore
	arrived *sync.WaitGroup
	gate    chan struct{}
}

func (s *gatedTicketStore) Cancel(ctx context.Context, id string) error {
	s.arrived.Done()
	<-s.gate
	return s.memTicketStore.Cancel(ctx, id)
}

func TestCancel_ConcurrentDoubleRelease_SurfacesAsDrift(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := newMemState()
	seedEvent(st, "e1", 10, now)

	var arrived sync.WaitGroup
	tickets := &gatedTicketStore{
		memTicketStore: &memTicketStore{st: st},
		arrived:        &arrived,
		gate:           make(chan struct{}),
	}
	svc := NewReservationService(
		tickets, &memEventStore{st: st}, memUserRepo{}, &memSessionStore{},
		silentNotifier{}, clock.NewFixed(now), newTestLogger(t),
	)

	other := auth.Identity{UserID: "u2", Caps: domain.CapHoldTickets}
	ticket, err := svc.Reserve(context.Background(), holder, "e1")
	require.NoError(t, err)
	_, err = svc.Reserve(context.Background(), other, "e1")
	require.NoError(t, err)

	// Both cancels read the active status and release a seat before
	// either marks the row cancelled. The seat comes back twice; the
	// audit reports the counter disagreement.
	arrived.Add(2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Cancel(context.Background(), holder, ticket.ID)
		}(i)
	}
	arrived.Wait()
	close(tickets.gate)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, 10, st.events["e1"].RemainingTickets)

	drift, err := svc.AuditCapacity(context.Background())
	require.NoError(t, err)
	require.Len(t, drift, 1)
	assert.Equal(t, "e1", drift[0].EventID)
	assert.Equal(t, 1, drift[0].ActiveTickets)
	assert.Equal(t, 10, drift[0].RemainingTickets)
}
