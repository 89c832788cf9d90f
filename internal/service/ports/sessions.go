package ports

import (
	"context"
	"time"
)

// EntrySessionStore keeps short-lived entry tokens minted by ticket
// owners for door check-in. Take must consume the token atomically so
// a token admits at most once.
type EntrySessionStore interface {
	Save(ctx context.Context, token, ticketID string, ttl time.Duration) error
	Take(ctx context.Context, token string) (string, error)
}
