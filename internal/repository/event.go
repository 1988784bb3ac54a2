package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isharanirmal/Onvent/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

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
	query := `INSERT INTO events (id, title, description, location, event_date, price, max_attendees, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.EventDate,
		e.Price, e.MaxAttendees, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, location, event_date, price, max_attendees, created_at, updated_at
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.EventDate,
		&e.Price, &e.MaxAttendees, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, description, location, event_date, price, max_attendees, created_at, updated_at
			  FROM events
			  ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Location, &e.EventDate,
			&e.Price, &e.MaxAttendees, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// GetAvailability пересчитывает занятые места по активным билетам.
// Тот же вывод, что делает транзакция бронирования, поэтому чтение и
// запись никогда не расходятся.
func (r *EventRepository) GetAvailability(ctx context.Context, eventID string) (*domain.Availability, error) {
	query := `
		SELECT
            e.id, e.title, e.max_attendees,
            COUNT(t.id) AS booked_seats
        FROM events e
        LEFT JOIN tickets t
            ON t.event_id = e.id
            AND t.status = $2
        WHERE e.id = $1
        GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.TicketStatusActive)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	var a domain.Availability
	if err = row.Scan(&a.EventID, &a.EventTitle, &a.MaxAttendees, &a.BookedSeats); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan availability: %w", err)
	}

	a.AvailableSeats = a.MaxAttendees - a.BookedSeats
	a.HasCapacity = a.AvailableSeats > 0

	return &a, nil
}
