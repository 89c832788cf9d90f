package dto

type CreateEventRequest struct {
	Name          string `json:"name" binding:"required"`
	ShortName     string `json:"short_name"`
	Place         string `json:"place"`
	Description   string `json:"description"`
	Excerpt       string `json:"excerpt"`
	BeginTime     string `json:"begin_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	BookBeginTime string `json:"book_begin_time" binding:"required"`
	BookEndTime   string `json:"book_end_time" binding:"required"`
	TotalTickets  int    `json:"total_tickets" binding:"required,gt=0"`
}

type ReserveRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

type CheckInByTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Caps           int    `json:"caps"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
