package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sunziping2016/YAWeChatTicket/internal/auth"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/sunziping2016/YAWeChatTicket/internal/handler/dto"
	"github.com/sunziping2016/YAWeChatTicket/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, caller auth.Identity, input domain.CreateEventInput) (*domain.Event, error)
	Publish(ctx context.Context, caller auth.Identity, id string) error
	Delete(ctx context.Context, caller auth.Identity, id string) error
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type TicketSvc interface {
	Reserve(ctx context.Context, caller auth.Identity, eventID string) (*domain.Ticket, error)
	Cancel(ctx context.Context, caller auth.Identity, ticketID string) error
	CheckIn(ctx context.Context, caller auth.Identity, ticketID string) (*domain.EventCounters, error)
	CreateEntryToken(ctx context.Context, caller auth.Identity, ticketID string) (string, error)
	CheckInByToken(ctx context.Context, caller auth.Identity, token string) (*domain.EventCounters, error)
	ListByOwner(ctx context.Context, caller auth.Identity) ([]*domain.Ticket, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService  EventSvc
	ticketService TicketSvc
	userService   UserSvc
}

func NewHandler(eventService EventSvc, ticketService TicketSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:  eventService,
		ticketService: ticketService,
		userService:   userService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: "validation"})
		return
	}

	input := domain.CreateEventInput{
		Name:         req.Name,
		ShortName:    req.ShortName,
		Place:        req.Place,
		Description:  req.Description,
		Excerpt:      req.Excerpt,
		TotalTickets: req.TotalTickets,
	}

	var err error
	for _, f := range []struct {
		dst *time.Time
		src string
	}{
		{&input.BeginTime, req.BeginTime},
		{&input.EndTime, req.EndTime},
		{&input.BookBeginTime, req.BookBeginTime},
		{&input.BookEndTime, req.BookEndTime},
	} {
		if *f.dst, err = time.Parse(time.RFC3339, f.src); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid time format, expected RFC3339",
				Kind:  "validation",
			})
			return
		}
	}

	event, err := h.eventService.Create(c.Request.Context(), caller, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) PublishEvent(c *ginext.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id", Kind: "validation"})
		return
	}

	if err := h.eventService.Publish(c.Request.Context(), caller, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id", Kind: "validation"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), caller, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id", Kind: "validation"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Tickets

func (h *Handler) ReserveTicket(c *ginext.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: "validation"})
		return
	}

	ticket, err := h.ticketService.Reserve(c.Request.Context(), caller, req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReserveResponse{
		Status:      "ok",
		Reservation: dto.ToTicketResponse(ticket),
	})
}

func (h *Handler) CancelTicket(c *ginext.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id", Kind: "validation"})
		return
	}

	if err := h.ticketService.Cancel(c.Request.Context(), caller, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) ListMyTickets(c *ginext.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	tickets, err := h.ticketService.ListByOwner(c.Request.Context(), caller)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateEntryToken(c *ginext.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id", Kind: "validation"})
		return
	}

	token, err := h.ticketService.CreateEntryToken(c.Request.Context(), caller, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EntryTokenResponse{Status: "ok", Token: token})
}

func (h *Handler) CheckInTicket(c *ginext.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id", Kind: "validation"})
		return
	}

	counters, err := h.ticketService.CheckIn(c.Request.Context(), caller, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckInResponse{Status: "ok", Counters: *counters})
}

func (h *Handler) CheckInByToken(c *ginext.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	var req dto.CheckInByTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: "validation"})
		return
	}

	counters, err := h.ticketService.CheckInByToken(c.Request.Context(), caller, req.Token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckInResponse{Status: "ok", Counters: *counters})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: "validation"})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Caps:           req.Caps,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	resp := dto.ErrorResponse{Error: err.Error(), Kind: domain.ErrorKind(err)}

	var already *domain.AlreadyTicketedError
	if errors.As(err, &already) {
		existing := dto.ToTicketResponse(already.Existing)
		resp.Reservation = &existing
	}

	switch resp.Kind {
	case "unauthorized":
		c.JSON(http.StatusUnauthorized, resp)
	case "forbidden":
		c.JSON(http.StatusForbidden, resp)
	case "not_found":
		c.JSON(http.StatusNotFound, resp)
	case "already_reserved", "event_unavailable", "already_checked_in", "ticket_not_active":
		c.JSON(http.StatusConflict, resp)
	case "validation", "entry_token_invalid":
		c.JSON(http.StatusBadRequest, resp)
	default:
		resp.Error = "internal server error"
		c.JSON(http.StatusInternalServerError, resp)
	}
}
