package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// TryCreate inserts the ticket as a single statement. The partial
// unique index on (event_id, owner_id) WHERE status <> 'cancelled'
// closes the race between concurrent requests for the same pair: the
// loser gets a 23505 and we hand back the winner's row.
func (r *TicketRepository) TryCreate(ctx context.Context, t *domain.Ticket) error {
	query := `INSERT INTO tickets (id, event_id, owner_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.EventID, t.OwnerID, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				existing, lookupErr := r.GetByOwnerAndEvent(ctx, t.OwnerID, t.EventID)
				if lookupErr != nil {
					// The winning row was cancelled or checked in between
					// our insert and this lookup; report the conflict anyway.
					return domain.ErrAlreadyTicketed
				}
				return &domain.AlreadyTicketedError{Existing: existing}
			case "23503":
				// Foreign key on event_id: the event does not exist.
				return domain.ErrEventNotFound
			}
		}
		return fmt.Errorf("insert ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT id, event_id, owner_id, status, created_at, updated_at
			  FROM tickets
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(&t.ID, &t.EventID, &t.OwnerID, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

// GetByOwnerAndEvent returns the non-cancelled ticket for the pair.
func (r *TicketRepository) GetByOwnerAndEvent(ctx context.Context, ownerID, eventID string) (*domain.Ticket, error) {
	query := `SELECT id, event_id, owner_id, status, created_at, updated_at
			  FROM tickets
			  WHERE owner_id = $1 AND event_id = $2 AND status <> $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ownerID, eventID, domain.TicketStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("get ticket by owner and event: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(&t.ID, &t.EventID, &t.OwnerID, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

// Delete removes the row entirely. It exists only for the
// coordinator's compensation step; cancelled tickets are kept, a
// ticket whose capacity reservation failed never existed.
func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tickets WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}

	return nil
}

// Cancel marks the ticket cancelled. Idempotent: cancelling an already
// cancelled ticket succeeds without touching the row again.
func (r *TicketRepository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE tickets
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.TicketStatusCancelled, domain.TicketStatusActive,
	)
	if err != nil {
		return fmt.Errorf("cancel ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		ticket, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if ticket.Status == domain.TicketStatusCancelled {
			return nil
		}
		return domain.ErrTicketNotActive
	}

	return nil
}

// CheckIn transitions active -> checked_in with a single conditional
// update keyed on the current status, so two concurrent scans of the
// same ticket admit exactly one.
func (r *TicketRepository) CheckIn(ctx context.Context, id string) error {
	query := `UPDATE tickets
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.TicketStatusCheckedIn, domain.TicketStatusActive,
	)
	if err != nil {
		return fmt.Errorf("check in ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check in rows affected: %w", err)
	}
	if rows == 0 {
		ticket, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if ticket.Status == domain.TicketStatusCheckedIn {
			return domain.ErrTicketCheckedIn
		}
		return domain.ErrTicketNotActive
	}

	return nil
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Ticket, error) {
	query := `SELECT id, event_id, owner_id, status, created_at, updated_at
			  FROM tickets
			  WHERE owner_id = $1 AND status <> $2
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID, domain.TicketStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("list tickets by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err = rows.Scan(&t.ID, &t.EventID, &t.OwnerID, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

func (r *TicketRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	query := `SELECT id, event_id, owner_id, status, created_at, updated_at
			  FROM tickets
			  WHERE event_id = $1 AND status <> $2
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.TicketStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("list tickets by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err = rows.Scan(&t.ID, &t.EventID, &t.OwnerID, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket by event: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
