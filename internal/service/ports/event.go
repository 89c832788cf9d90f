package ports

import (
	"context"
	"time"

	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
)

// EventStore owns the capacity counter. TryReserveCapacity and
// ReleaseCapacity must be atomic conditional updates; the counter is
// never read-modified-written outside them.
type EventStore interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListBookable(ctx context.Context, now time.Time, limit int) ([]*domain.Event, error)
	FindBookableByName(ctx context.Context, name string, now time.Time) (*domain.Event, error)
	SetPublished(ctx context.Context, id string, published bool) error
	SoftDelete(ctx context.Context, id string) error

	TryReserveCapacity(ctx context.Context, eventID string, now time.Time) error
	ReleaseCapacity(ctx context.Context, eventID string) error
	IncrementCheckedIn(ctx context.Context, eventID string) (*domain.EventCounters, error)
	FindCapacityDrift(ctx context.Context) ([]*domain.CapacityDrift, error)
}
