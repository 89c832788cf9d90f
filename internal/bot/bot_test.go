package bot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sunziping2016/YAWeChatTicket/internal/auth"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeUsers struct {
	byChat map[int64]*domain.User
}

func (f *fakeUsers) GetByTelegramChatID(_ context.Context, chatID int64) (*domain.User, error) {
	u, ok := f.byChat[chatID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type fakeEvents struct {
	byName   map[string]*domain.Event
	bookable []*domain.Event
}

func (f *fakeEvents) Get(_ context.Context, id string) (*domain.Event, error) {
	for _, e := range f.byName {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEvents) ListBookable(_ context.Context) ([]*domain.Event, error) {
	return f.bookable, nil
}

func (f *fakeEvents) FindBookableByName(_ context.Context, name string) (*domain.Event, error) {
	e, ok := f.byName[name]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

type fakeReservations struct {
	reserveErr error
	cancelErr  error
	tickets    []*domain.Ticket
	reserved   []string
	cancelled  []string
}

func (f *fakeReservations) Reserve(_ context.Context, _ auth.Identity, eventID string) (*domain.Ticket, error) {
	if f.reserveErr != nil {
		return nil, f.reserveErr
	}
	f.reserved = append(f.reserved, eventID)
	return &domain.Ticket{ID: "t1", EventID: eventID, Status: domain.TicketStatusActive}, nil
}

func (f *fakeReservations) CancelByEvent(_ context.Context, _ auth.Identity, eventID string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, eventID)
	return nil
}

func (f *fakeReservations) ListByOwner(_ context.Context, _ auth.Identity) ([]*domain.Ticket, error) {
	return f.tickets, nil
}

func newTestBot(t *testing.T, users *fakeUsers, events *fakeEvents, reservations *fakeReservations) *Bot {
	t.Helper()
	return New(nil, users, events, reservations, newTestLogger(t))
}

func linkedUser(chatID int64) *fakeUsers {
	return &fakeUsers{byChat: map[int64]*domain.User{
		chatID: {ID: "u1", Username: "alice", Caps: domain.CapHoldTickets},
	}}
}

func TestBot_Help(t *testing.T) {
	b := newTestBot(t, &fakeUsers{}, &fakeEvents{}, &fakeReservations{})

	reply := b.HandleCommand(context.Background(), 1, "help", "")

	assert.Contains(t, reply, "/book")
	assert.Contains(t, reply, "/cancel")
}

func TestBot_UnknownCommandIgnored(t *testing.T) {
	b := newTestBot(t, &fakeUsers{}, &fakeEvents{}, &fakeReservations{})

	reply := b.HandleCommand(context.Background(), 1, "weather", "")

	assert.Empty(t, reply)
}

func TestBot_Events(t *testing.T) {
	events := &fakeEvents{bookable: []*domain.Event{
		{ID: "e1", Name: "Concert", ShortName: "concert", RemainingTickets: 7, BeginTime: time.Now()},
	}}
	b := newTestBot(t, &fakeUsers{}, events, &fakeReservations{})

	reply := b.HandleCommand(context.Background(), 1, "events", "")

	assert.Contains(t, reply, "Concert")
	assert.Contains(t, reply, "7 tickets left")
}

func TestBot_Events_Empty(t *testing.T) {
	b := newTestBot(t, &fakeUsers{}, &fakeEvents{}, &fakeReservations{})

	reply := b.HandleCommand(context.Background(), 1, "events", "")

	assert.Equal(t, "Nothing is open for booking right now.", reply)
}

func TestBot_Book(t *testing.T) {
	events := &fakeEvents{byName: map[string]*domain.Event{
		"concert": {ID: "e1", Name: "Concert"},
	}}
	reservations := &fakeReservations{}
	b := newTestBot(t, linkedUser(42), events, reservations)

	reply := b.HandleCommand(context.Background(), 42, "book", "concert")

	assert.Contains(t, reply, "Got it!")
	assert.Equal(t, []string{"e1"}, reservations.reserved)
}

func TestBot_Book_UnlinkedChat(t *testing.T) {
	b := newTestBot(t, &fakeUsers{}, &fakeEvents{}, &fakeReservations{})

	reply := b.HandleCommand(context.Background(), 42, "book", "concert")

	assert.Contains(t, reply, "Link your account first")
}

func TestBot_Book_NoArgs(t *testing.T) {
	b := newTestBot(t, linkedUser(42), &fakeEvents{}, &fakeReservations{})

	reply := b.HandleCommand(context.Background(), 42, "book", "")

	assert.Equal(t, "Usage: /book <event name>", reply)
}

func TestBot_Book_AlreadyTicketed(t *testing.T) {
	events := &fakeEvents{byName: map[string]*domain.Event{
		"concert": {ID: "e1", Name: "Concert"},
	}}
	reservations := &fakeReservations{
		reserveErr: &domain.AlreadyTicketedError{Existing: &domain.Ticket{ID: "t0"}},
	}
	b := newTestBot(t, linkedUser(42), events, reservations)

	reply := b.HandleCommand(context.Background(), 42, "book", "concert")

	assert.Equal(t, "You already hold a ticket for this event.", reply)
}

func TestBot_Book_SoldOut(t *testing.T) {
	events := &fakeEvents{byName: map[string]*domain.Event{
		"concert": {ID: "e1", Name: "Concert"},
	}}
	reservations := &fakeReservations{reserveErr: domain.ErrEventUnavailable}
	b := newTestBot(t, linkedUser(42), events, reservations)

	reply := b.HandleCommand(context.Background(), 42, "book", "concert")

	assert.Equal(t, "The event is not open for booking or sold out.", reply)
}

func TestBot_Cancel(t *testing.T) {
	events := &fakeEvents{byName: map[string]*domain.Event{
		"concert": {ID: "e1", Name: "Concert"},
	}}
	reservations := &fakeReservations{}
	b := newTestBot(t, linkedUser(42), events, reservations)

	reply := b.HandleCommand(context.Background(), 42, "cancel", "concert")

	assert.Equal(t, "Ticket returned.", reply)
	assert.Equal(t, []string{"e1"}, reservations.cancelled)
}

func TestBot_Cancel_NoTicket(t *testing.T) {
	events := &fakeEvents{byName: map[string]*domain.Event{
		"concert": {ID: "e1", Name: "Concert"},
	}}
	reservations := &fakeReservations{cancelErr: domain.ErrTicketNotFound}
	b := newTestBot(t, linkedUser(42), events, reservations)

	reply := b.HandleCommand(context.Background(), 42, "cancel", "concert")

	assert.Equal(t, "You do not hold a ticket for this event.", reply)
}

func TestBot_Tickets(t *testing.T) {
	events := &fakeEvents{byName: map[string]*domain.Event{
		"concert": {ID: "e1", Name: "Concert"},
	}}
	reservations := &fakeReservations{tickets: []*domain.Ticket{
		{ID: "t1", EventID: "e1", Status: domain.TicketStatusActive},
	}}
	b := newTestBot(t, linkedUser(42), events, reservations)

	reply := b.HandleCommand(context.Background(), 42, "tickets", "")

	assert.Contains(t, reply, "Concert")
	assert.Contains(t, reply, "active")
}

func TestBot_Tickets_Empty(t *testing.T) {
	b := newTestBot(t, linkedUser(42), &fakeEvents{}, &fakeReservations{})

	reply := b.HandleCommand(context.Background(), 42, "tickets", "")

	assert.Equal(t, "You hold no tickets yet.", reply)
}
