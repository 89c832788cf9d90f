package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/sunziping2016/YAWeChatTicket/internal/scheduler/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestSweeper_Tick_ReportsDrift(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, 50*time.Millisecond, log)

	drift := []*domain.CapacityDrift{
		{EventID: "e1", TotalTickets: 10, RemainingTickets: 3, ActiveTickets: 6},
	}
	auditor.EXPECT().AuditCapacity(mock.Anything).Return(drift, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(auditor.Calls), 1)
}

func TestSweeper_Tick_HandlesError(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, 50*time.Millisecond, log)

	auditor.EXPECT().AuditCapacity(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(auditor.Calls), 1)
}

func TestSweeper_StopsOnContextCancel(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancel")
	}
}
