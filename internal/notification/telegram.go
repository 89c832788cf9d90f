package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, logger logger.Logger) *TelegramNotifier {
	if bot == nil {
		logger.Warn("telegram bot is not configured, chat notifications disabled")
	}
	return &TelegramNotifier{bot: bot, logger: logger}
}

func (n *TelegramNotifier) TicketIssued(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	text := fmt.Sprintf(
		"*Ticket issued!*\n\nEvent: %s\nStarts (UTC): %s\nTicket: %s",
		event.Name, event.BeginTime.Format(timeLayout), ticket.ID,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) TicketCancelled(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	text := fmt.Sprintf(
		"*Ticket cancelled*\n\nEvent: %s\nYour seat has been returned.",
		event.Name,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) TicketCheckedIn(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	text := fmt.Sprintf(
		"*Checked in!*\n\nEvent: %s\nEnjoy.",
		event.Name,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
