package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, name, short_name, place, description, excerpt,
		begin_time, end_time, book_begin_time, book_end_time,
		total_tickets, remaining_tickets, checked_in_tickets,
		published, creator_id, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, short_name, place, description, excerpt,
				begin_time, end_time, book_begin_time, book_end_time,
				total_tickets, remaining_tickets, creator_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.ShortName, e.Place, e.Description, e.Excerpt,
		e.BeginTime, e.EndTime, e.BookBeginTime, e.BookEndTime,
		e.TotalTickets, e.TotalTickets, e.CreatorID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// TryReserveCapacity decrements remaining_tickets by one in a single
// conditional update. Publication, capacity and the booking window are
// all evaluated inside the same statement so that concurrent reservers
// can never over-draw the counter through a read-then-write race.
func (r *EventRepository) TryReserveCapacity(ctx context.Context, eventID string, now time.Time) error {
	query := `UPDATE events
			  SET remaining_tickets = remaining_tickets - 1, updated_at = now()
			  WHERE id = $1
			    AND published
			    AND NOT deleted
			    AND remaining_tickets > 0
			    AND book_begin_time <= $2
			    AND book_end_time >= $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, now)
	if err != nil {
		return fmt.Errorf("reserve capacity: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve capacity rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventUnavailable
	}

	return nil
}

// ReleaseCapacity returns one seat, capped at total_tickets.
func (r *EventRepository) ReleaseCapacity(ctx context.Context, eventID string) error {
	query := `UPDATE events
			  SET remaining_tickets = LEAST(remaining_tickets + 1, total_tickets),
			      updated_at = now()
			  WHERE id = $1 AND NOT deleted`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return fmt.Errorf("release capacity: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release capacity rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) IncrementCheckedIn(ctx context.Context, eventID string) (*domain.EventCounters, error) {
	query := `UPDATE events
			  SET checked_in_tickets = checked_in_tickets + 1, updated_at = now()
			  WHERE id = $1 AND NOT deleted
			  RETURNING total_tickets, remaining_tickets, checked_in_tickets`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("increment checked in: %w", err)
	}

	var c domain.EventCounters
	if err = row.Scan(&c.TotalTickets, &c.RemainingTickets, &c.CheckedInTickets); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan counters: %w", err)
	}

	return &c, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1 AND NOT deleted`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// FindBookableByName looks an open event up by its short name, the form
// bot commands use.
func (r *EventRepository) FindBookableByName(ctx context.Context, name string, now time.Time) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE short_name = $1
			    AND published
			    AND NOT deleted
			    AND book_end_time >= $2
			  ORDER BY book_begin_time
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, name, now)
	if err != nil {
		return nil, fmt.Errorf("find event by name: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE published AND NOT deleted
			  ORDER BY begin_time DESC`

	return r.queryEvents(ctx, query)
}

// ListBookable returns events currently open for booking with seats left.
func (r *EventRepository) ListBookable(ctx context.Context, now time.Time, limit int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE published
			    AND NOT deleted
			    AND remaining_tickets > 0
			    AND book_begin_time <= $1
			    AND book_end_time >= $1
			  ORDER BY begin_time DESC
			  LIMIT $2`

	return r.queryEvents(ctx, query, now, limit)
}

func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	query := `SELECT e.id, e.name, e.short_name, e.place, e.description, e.excerpt,
				e.begin_time, e.end_time, e.book_begin_time, e.book_end_time,
				e.total_tickets, e.remaining_tickets, e.checked_in_tickets,
				e.published, e.creator_id, e.created_at, e.updated_at,
				COUNT(t.id) AS active_tickets
			  FROM events e
			  LEFT JOIN tickets t
			      ON t.event_id = e.id
			      AND t.status <> $2
			  WHERE e.id = $1 AND NOT e.deleted
			  GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.TicketStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var d domain.EventDetails
	e := &d.Event
	if err = row.Scan(
		&e.ID, &e.Name, &e.ShortName, &e.Place, &e.Description, &e.Excerpt,
		&e.BeginTime, &e.EndTime, &e.BookBeginTime, &e.BookEndTime,
		&e.TotalTickets, &e.RemainingTickets, &e.CheckedInTickets,
		&e.Published, &e.CreatorID, &e.CreatedAt, &e.UpdatedAt,
		&d.ActiveTickets,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	return &d, nil
}

func (r *EventRepository) SetPublished(ctx context.Context, id string, published bool) error {
	query := `UPDATE events
			  SET published = $2, updated_at = now()
			  WHERE id = $1 AND NOT deleted`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, published)
	if err != nil {
		return fmt.Errorf("set published: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set published rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// SoftDelete hides the event; rows are never removed while tickets
// reference them.
func (r *EventRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE events
			  SET deleted = TRUE, updated_at = now()
			  WHERE id = $1 AND NOT deleted`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("soft delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// FindCapacityDrift returns events whose non-cancelled ticket count
// disagrees with total_tickets - remaining_tickets. This is the audit
// query for reservations interrupted between the ticket insert and the
// capacity decrement.
func (r *EventRepository) FindCapacityDrift(ctx context.Context) ([]*domain.CapacityDrift, error) {
	query := `SELECT e.id, e.total_tickets, e.remaining_tickets,
				COUNT(t.id) AS active_tickets
			  FROM events e
			  LEFT JOIN tickets t
			      ON t.event_id = e.id
			      AND t.status <> $1
			  WHERE NOT e.deleted
			  GROUP BY e.id
			  HAVING COUNT(t.id) <> e.total_tickets - e.remaining_tickets`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.TicketStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("find capacity drift: %w", err)
	}
	defer rows.Close()

	var res []*domain.CapacityDrift
	for rows.Next() {
		var d domain.CapacityDrift
		if err = rows.Scan(&d.EventID, &d.TotalTickets, &d.RemainingTickets, &d.ActiveTickets); err != nil {
			return nil, fmt.Errorf("scan drift: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.ShortName, &e.Place, &e.Description, &e.Excerpt,
		&e.BeginTime, &e.EndTime, &e.BookBeginTime, &e.BookEndTime,
		&e.TotalTickets, &e.RemainingTickets, &e.CheckedInTickets,
		&e.Published, &e.CreatorID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
