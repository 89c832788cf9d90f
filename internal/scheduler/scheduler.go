package scheduler

import (
	"context"
	"time"

	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type capacityAuditor interface {
	AuditCapacity(ctx context.Context) ([]*domain.CapacityDrift, error)
}

// Sweeper periodically audits the capacity invariant. A reservation
// interrupted between its two store writes leaves a drift row; the
// sweep surfaces it for the operator and repairs nothing itself.
type Sweeper struct {
	reservations capacityAuditor
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations capacityAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Sweeper {
	return &Sweeper{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("consistency sweep started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("consistency sweep stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	drift, err := s.reservations.AuditCapacity(ctx)
	if err != nil {
		s.logger.Error("capacity audit failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, d := range drift {
		s.logger.Error("capacity drift detected",
			logger.String("event_id", d.EventID),
			logger.Int("total_tickets", d.TotalTickets),
			logger.Int("remaining_tickets", d.RemainingTickets),
			logger.Int("active_tickets", d.ActiveTickets),
		)
	}
}
