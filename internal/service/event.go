package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sunziping2016/YAWeChatTicket/internal/auth"
	"github.com/sunziping2016/YAWeChatTicket/internal/clock"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/sunziping2016/YAWeChatTicket/internal/service/ports"
)

const bookableListLimit = 10

type EventService struct {
	repo      ports.EventStore
	announcer EventAnnouncer
	clock     clock.Clock
}

// EventAnnouncer pushes event lifecycle changes to connected clients.
type EventAnnouncer interface {
	EventPublished(ctx context.Context, event *domain.Event)
}

func NewEventService(repo ports.EventStore, announcer EventAnnouncer, clk clock.Clock) *EventService {
	return &EventService{
		repo:      repo,
		announcer: announcer,
		clock:     clk,
	}
}

func (s *EventService) Create(ctx context.Context, caller auth.Identity, input domain.CreateEventInput) (*domain.Event, error) {
	if caller.UserID == "" || !caller.Can(domain.CapPublish) {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.TotalTickets <= 0 {
		return nil, fmt.Errorf("%w: total_tickets must be positive", domain.ErrValidation)
	}
	if input.BookEndTime.Before(input.BookBeginTime) {
		return nil, fmt.Errorf("%w: booking window ends before it begins", domain.ErrValidation)
	}
	if input.EndTime.Before(input.BeginTime) {
		return nil, fmt.Errorf("%w: event ends before it begins", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:               uuid.New().String(),
		Name:             input.Name,
		ShortName:        input.ShortName,
		Place:            input.Place,
		Description:      input.Description,
		Excerpt:          input.Excerpt,
		BeginTime:        input.BeginTime,
		EndTime:          input.EndTime,
		BookBeginTime:    input.BookBeginTime,
		BookEndTime:      input.BookEndTime,
		TotalTickets:     input.TotalTickets,
		RemainingTickets: input.TotalTickets,
		CreatorID:        caller.UserID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// Publish opens the event. Total capacity is immutable from here on.
func (s *EventService) Publish(ctx context.Context, caller auth.Identity, id string) error {
	event, err := s.authorizeOwner(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := s.repo.SetPublished(ctx, id, true); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	event.Published = true
	go s.announcer.EventPublished(context.WithoutCancel(ctx), event)

	return nil
}

func (s *EventService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	if _, err := s.authorizeOwner(ctx, caller, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// FindBookableByName resolves a short name the way bot commands refer
// to events.
func (s *EventService) FindBookableByName(ctx context.Context, name string) (*domain.Event, error) {
	return s.repo.FindBookableByName(ctx, name, s.clock.Now())
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) ListBookable(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListBookable(ctx, s.clock.Now(), bookableListLimit)
}

func (s *EventService) authorizeOwner(ctx context.Context, caller auth.Identity, id string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.CreatorID != caller.UserID && !caller.Can(domain.CapAdmin) {
		return nil, domain.ErrForbidden
	}
	return event, nil
}
