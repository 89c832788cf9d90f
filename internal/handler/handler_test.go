package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/sunziping2016/YAWeChatTicket/internal/auth"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/sunziping2016/YAWeChatTicket/internal/handler/dto"
	hmocks "github.com/sunziping2016/YAWeChatTicket/internal/handler/mocks"
	"github.com/sunziping2016/YAWeChatTicket/internal/middleware"
	"github.com/sunziping2016/YAWeChatTicket/internal/router"
	"github.com/wb-go/wbf/ginext"
)

const testSecret = "test-secret"

type handlerMocks struct {
	events  *hmocks.MockEventSvc
	tickets *hmocks.MockTicketSvc
	users   *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		events:  hmocks.NewMockEventSvc(t),
		tickets: hmocks.NewMockTicketSvc(t),
		users:   hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.events, m.tickets, m.users)
	verifier := auth.NewVerifier(testSecret, time.Hour)
	noopWS := func(c *ginext.Context) { c.Status(http.StatusNotImplemented) }

	r := router.InitRouter("test", h, noopWS, middleware.Auth(verifier))

	return m, r
}

func bearerFor(t *testing.T, userID string, caps int) string {
	t.Helper()
	token, err := auth.NewVerifier(testSecret, time.Hour).Issue(userID, caps)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, r http.Handler, method, path, authz string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	now := time.Now().UTC().Truncate(time.Second)
	event := &domain.Event{
		ID:               uuid.New().String(),
		Name:             "Concert",
		TotalTickets:     100,
		RemainingTickets: 100,
		CreatorID:        "org",
		BookBeginTime:    now,
		BookEndTime:      now.Add(24 * time.Hour),
		BeginTime:        now.Add(48 * time.Hour),
		EndTime:          now.Add(52 * time.Hour),
		CreatedAt:        now,
	}

	m.events.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(event, nil)

	body := dto.CreateEventRequest{
		Name:          "Concert",
		BeginTime:     now.Add(48 * time.Hour).Format(time.RFC3339),
		EndTime:       now.Add(52 * time.Hour).Format(time.RFC3339),
		BookBeginTime: now.Format(time.RFC3339),
		BookEndTime:   now.Add(24 * time.Hour).Format(time.RFC3339),
		TotalTickets:  100,
	}

	w := doJSON(t, r, http.MethodPost, "/api/events", bearerFor(t, "org", domain.CapPublish), body)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, event.ID, resp.ID)
	assert.Equal(t, 100, resp.RemainingTickets)
}

func TestHandler_CreateEvent_NoToken(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", "", dto.CreateEventRequest{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateEvent_BadTime(t *testing.T) {
	_, r := setupRouter(t)

	body := dto.CreateEventRequest{
		Name:          "Concert",
		BeginTime:     "yesterday",
		EndTime:       "tomorrow",
		BookBeginTime: "now",
		BookEndTime:   "later",
		TotalTickets:  10,
	}

	w := doJSON(t, r, http.MethodPost, "/api/events", bearerFor(t, "org", domain.CapPublish), body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation", resp.Kind)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.events.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+id, "", nil)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Kind)
}

// --- Tickets ---

func TestHandler_ReserveTicket_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	ticket := &domain.Ticket{
		ID:      uuid.New().String(),
		EventID: eventID,
		OwnerID: "u1",
		Status:  domain.TicketStatusActive,
	}

	m.tickets.EXPECT().Reserve(mock.Anything, mock.Anything, eventID).Return(ticket, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tickets",
		bearerFor(t, "u1", domain.CapHoldTickets), dto.ReserveRequest{EventID: eventID})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReserveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, ticket.ID, resp.Reservation.ID)
	assert.Equal(t, "active", resp.Reservation.Status)
}

func TestHandler_ReserveTicket_AlreadyReserved(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	existing := &domain.Ticket{
		ID:      uuid.New().String(),
		EventID: eventID,
		OwnerID: "u1",
		Status:  domain.TicketStatusActive,
	}

	m.tickets.EXPECT().Reserve(mock.Anything, mock.Anything, eventID).
		Return(nil, &domain.AlreadyTicketedError{Existing: existing})

	w := doJSON(t, r, http.MethodPost, "/api/tickets",
		bearerFor(t, "u1", domain.CapHoldTickets), dto.ReserveRequest{EventID: eventID})

	require.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "already_reserved", resp.Kind)
	require.NotNil(t, resp.Reservation)
	assert.Equal(t, existing.ID, resp.Reservation.ID)
}

func TestHandler_ReserveTicket_SoldOut(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.tickets.EXPECT().Reserve(mock.Anything, mock.Anything, eventID).
		Return(nil, domain.ErrEventUnavailable)

	w := doJSON(t, r, http.MethodPost, "/api/tickets",
		bearerFor(t, "u1", domain.CapHoldTickets), dto.ReserveRequest{EventID: eventID})

	require.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "event_unavailable", resp.Kind)
	assert.Nil(t, resp.Reservation)
}

func TestHandler_ReserveTicket_UnknownEvent(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.tickets.EXPECT().Reserve(mock.Anything, mock.Anything, eventID).
		Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/tickets",
		bearerFor(t, "u1", domain.CapHoldTickets), dto.ReserveRequest{EventID: eventID})

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Kind)
}

func TestHandler_ReserveTicket_BadEventID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tickets",
		bearerFor(t, "u1", domain.CapHoldTickets), dto.ReserveRequest{EventID: "nope"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelTicket(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.tickets.EXPECT().Cancel(mock.Anything, mock.Anything, id).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/tickets/"+id,
		bearerFor(t, "u1", domain.CapHoldTickets), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelTicket_CheckedIn(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.tickets.EXPECT().Cancel(mock.Anything, mock.Anything, id).
		Return(domain.ErrTicketCheckedIn)

	w := doJSON(t, r, http.MethodDelete, "/api/tickets/"+id,
		bearerFor(t, "u1", domain.CapHoldTickets), nil)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "already_checked_in", resp.Kind)
}

func TestHandler_CheckInByToken_Invalid(t *testing.T) {
	m, r := setupRouter(t)

	m.tickets.EXPECT().CheckInByToken(mock.Anything, mock.Anything, "tok").
		Return(nil, domain.ErrEntryTokenInvalid)

	w := doJSON(t, r, http.MethodPost, "/api/checkin",
		bearerFor(t, "org", domain.CapPublish), dto.CheckInByTokenRequest{Token: "tok"})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "entry_token_invalid", resp.Kind)
}

func TestHandler_CheckInTicket(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	counters := &domain.EventCounters{TotalTickets: 10, RemainingTickets: 4, CheckedInTickets: 3}
	m.tickets.EXPECT().CheckIn(mock.Anything, mock.Anything, id).Return(counters, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tickets/"+id+"/checkin",
		bearerFor(t, "org", domain.CapPublish), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Counters.CheckedInTickets)
}

func TestHandler_InternalErrorIsMasked(t *testing.T) {
	m, r := setupRouter(t)

	m.tickets.EXPECT().ListByOwner(mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused"))

	w := doJSON(t, r, http.MethodGet, "/api/tickets",
		bearerFor(t, "u1", domain.CapHoldTickets), nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

// --- Users ---

func TestHandler_CreateUser(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Username: "alice", Caps: domain.CapHoldTickets}
	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{Username: "alice"})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_ListUsers_RequiresAuth(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/users", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
