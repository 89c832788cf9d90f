package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sunziping2016/YAWeChatTicket/internal/auth"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type reservationSvc interface {
	Reserve(ctx context.Context, caller auth.Identity, eventID string) (*domain.Ticket, error)
	CancelByEvent(ctx context.Context, caller auth.Identity, eventID string) error
	ListByOwner(ctx context.Context, caller auth.Identity) ([]*domain.Ticket, error)
}

type eventSvc interface {
	Get(ctx context.Context, id string) (*domain.Event, error)
	ListBookable(ctx context.Context) ([]*domain.Event, error)
	FindBookableByName(ctx context.Context, name string) (*domain.Event, error)
}

type userResolver interface {
	GetByTelegramChatID(ctx context.Context, chatID int64) (*domain.User, error)
}

// Bot is the chat command surface. It resolves the chat to a linked
// account and delegates every booking operation to the same
// coordinator the REST and realtime surfaces use.
type Bot struct {
	api          *tgbotapi.BotAPI
	users        userResolver
	events       eventSvc
	reservations reservationSvc
	logger       logger.Logger
}

func New(
	api *tgbotapi.BotAPI,
	users userResolver,
	events eventSvc,
	reservations reservationSvc,
	logger logger.Logger,
) *Bot {
	return &Bot{
		api:          api,
		users:        users,
		events:       events,
		reservations: reservations,
		logger:       logger,
	}
}

// Run long-polls updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("bot started", logger.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}

			reply := b.HandleCommand(
				ctx,
				update.Message.Chat.ID,
				update.Message.Command(),
				strings.TrimSpace(update.Message.CommandArguments()),
			)
			if reply == "" {
				continue
			}

			msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
			if _, err := b.api.Send(msg); err != nil {
				b.logger.Error("failed to send bot reply",
					logger.Int64("chat_id", update.Message.Chat.ID),
					logger.String("error", err.Error()),
				)
			}
		}
	}
}

// HandleCommand maps one chat command to a reply.
func (b *Bot) HandleCommand(ctx context.Context, chatID int64, command, args string) string {
	switch command {
	case "start", "help":
		return "Commands:\n" +
			"/events — events open for booking\n" +
			"/book <name> — grab a ticket\n" +
			"/cancel <name> — return a ticket\n" +
			"/tickets — your tickets"
	case "events":
		return b.listEvents(ctx)
	case "book":
		return b.book(ctx, chatID, args)
	case "cancel":
		return b.cancel(ctx, chatID, args)
	case "tickets":
		return b.listTickets(ctx, chatID)
	default:
		return ""
	}
}

func (b *Bot) listEvents(ctx context.Context) string {
	events, err := b.events.ListBookable(ctx)
	if err != nil {
		b.logger.Error("failed to list bookable events", logger.String("error", err.Error()))
		return "Something went wrong, try again later."
	}
	if len(events) == 0 {
		return "Nothing is open for booking right now."
	}

	var sb strings.Builder
	sb.WriteString("Open for booking:\n")
	for _, e := range events {
		fmt.Fprintf(&sb, "• %s (%s) — %d tickets left, starts %s\n",
			e.Name, e.ShortName, e.RemainingTickets, e.BeginTime.Format(timeLayout))
	}
	return sb.String()
}

func (b *Bot) book(ctx context.Context, chatID int64, name string) string {
	if name == "" {
		return "Usage: /book <event name>"
	}

	user, reply := b.resolveUser(ctx, chatID)
	if reply != "" {
		return reply
	}

	event, err := b.events.FindBookableByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return "No such event."
		}
		b.logger.Error("failed to find event", logger.String("error", err.Error()))
		return "Something went wrong, try again later."
	}

	ticket, err := b.reservations.Reserve(ctx, auth.ForUser(user), event.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyTicketed):
			return "You already hold a ticket for this event."
		case errors.Is(err, domain.ErrEventUnavailable):
			return "The event is not open for booking or sold out."
		case errors.Is(err, domain.ErrUnauthorized):
			return "Your account is not allowed to hold tickets."
		default:
			b.logger.Error("failed to reserve via bot", logger.String("error", err.Error()))
			return "Something went wrong, try again later."
		}
	}

	return fmt.Sprintf("Got it! Ticket %s for %s.", ticket.ID, event.Name)
}

func (b *Bot) cancel(ctx context.Context, chatID int64, name string) string {
	if name == "" {
		return "Usage: /cancel <event name>"
	}

	user, reply := b.resolveUser(ctx, chatID)
	if reply != "" {
		return reply
	}

	event, err := b.events.FindBookableByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return "No such event."
		}
		b.logger.Error("failed to find event", logger.String("error", err.Error()))
		return "Something went wrong, try again later."
	}

	if err := b.reservations.CancelByEvent(ctx, auth.ForUser(user), event.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrTicketNotFound):
			return "You do not hold a ticket for this event."
		case errors.Is(err, domain.ErrTicketCheckedIn):
			return "That ticket has already been checked in."
		default:
			b.logger.Error("failed to cancel via bot", logger.String("error", err.Error()))
			return "Something went wrong, try again later."
		}
	}

	return "Ticket returned."
}

func (b *Bot) listTickets(ctx context.Context, chatID int64) string {
	user, reply := b.resolveUser(ctx, chatID)
	if reply != "" {
		return reply
	}

	tickets, err := b.reservations.ListByOwner(ctx, auth.ForUser(user))
	if err != nil {
		b.logger.Error("failed to list tickets via bot", logger.String("error", err.Error()))
		return "Something went wrong, try again later."
	}
	if len(tickets) == 0 {
		return "You hold no tickets yet."
	}

	var sb strings.Builder
	sb.WriteString("Your tickets:\n")
	for _, t := range tickets {
		label := t.EventID
		if event, err := b.events.Get(ctx, t.EventID); err == nil {
			label = event.Name
		}
		fmt.Fprintf(&sb, "• %s — %s\n", label, t.Status)
	}
	return sb.String()
}

func (b *Bot) resolveUser(ctx context.Context, chatID int64) (*domain.User, string) {
	user, err := b.users.GetByTelegramChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "Link your account first: register on the site and add this chat."
		}
		b.logger.Error("failed to resolve chat", logger.String("error", err.Error()))
		return nil, "Something went wrong, try again later."
	}
	return user, ""
}
