package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
)

const keyPrefix = "entry:"

// RedisStore keeps entry tokens with a TTL. GETDEL makes consumption
// atomic: a token scanned twice admits once.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, token, ticketID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+token, ticketID, ttl).Err(); err != nil {
		return fmt.Errorf("save entry token: %w", err)
	}
	return nil
}

func (s *RedisStore) Take(ctx context.Context, token string) (string, error) {
	ticketID, err := s.client.GetDel(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrEntryTokenInvalid
		}
		return "", fmt.Errorf("take entry token: %w", err)
	}
	return ticketID, nil
}
