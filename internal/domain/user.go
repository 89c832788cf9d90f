package domain

import "time"

// Capability bits mirror the user/publisher/administrator roles of the
// account system.
const (
	CapHoldTickets = 1 << iota
	CapPublish
	CapAdmin
)

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Caps           int       `json:"caps"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	Caps           int
	TelegramChatID *int64
}
