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

// BookActive выполняет проверку вместимости и вставку билета в одной
// транзакции. Блокировка строки мероприятия сериализует конкурентные
// бронирования: два запроса не могут одновременно увидеть последнее
// свободное место.
func (r *TicketRepository) BookActive(ctx context.Context, t *domain.Ticket, quantity int) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capQuery := `SELECT max_attendees FROM events WHERE id = $1 FOR UPDATE`
	var maxAttendees int
	if err = tx.QueryRowContext(ctx, capQuery, t.EventID).Scan(&maxAttendees); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrEventNotFound
		}
		return 0, fmt.Errorf("get max attendees: %w", err)
	}

	var booked int
	bookedQuery := `SELECT COUNT(*) FROM tickets
			  		WHERE event_id = $1 AND status = $2`
	if err = tx.QueryRowContext(
		ctx, bookedQuery, t.EventID, domain.TicketStatusActive,
	).Scan(&booked); err != nil {
		return 0, fmt.Errorf("count active tickets: %w", err)
	}

	available := maxAttendees - booked
	if available < quantity {
		return 0, &domain.InsufficientSeatsError{
			Available: available,
			Requested: quantity,
		}
	}

	query := `INSERT INTO tickets (id, user_id, event_id, ticket_code, status, purchase_date)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, query, t.ID, t.UserID, t.EventID,
		t.TicketCode, t.Status, t.PurchaseDate,
	); err != nil {
		return 0, fmt.Errorf("insert ticket: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit booking: %w", err)
	}

	return available - quantity, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT id, user_id, event_id, ticket_code, status, purchase_date, reminded_at
			  FROM tickets
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(
		&t.ID, &t.UserID, &t.EventID,
		&t.TicketCode, &t.Status, &t.PurchaseDate, &t.RemindedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

func (r *TicketRepository) ListActiveByUser(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	query := `SELECT id, user_id, event_id, ticket_code, status, purchase_date, reminded_at
			  FROM tickets
			  WHERE user_id = $1 AND status = $2
			  ORDER BY purchase_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, domain.TicketStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active tickets by user: %w", err)
	}
	defer rows.Close()

	return scanTickets(rows)
}

// Cancel выполняет условное обновление: вторая одновременная отмена увидит
// rows affected = 0 и получит ErrAlreadyCancelled.
func (r *TicketRepository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE tickets
			  SET status = $2
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, id,
		domain.TicketStatusCancelled, domain.TicketStatusActive,
	)
	if err != nil {
		return fmt.Errorf("cancel ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM tickets WHERE id = $1)`
		row, checkErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if checkErr != nil {
			return domain.ErrTicketNotFound
		}
		if scanErr := row.Scan(&exists); scanErr != nil || !exists {
			return domain.ErrTicketNotFound
		}
		return domain.ErrAlreadyCancelled
	}

	return nil
}

func (r *TicketRepository) MarkRemindersDue(ctx context.Context, window time.Duration) ([]*domain.Ticket, error) {
	query := `
        UPDATE tickets t
        SET reminded_at = NOW()
        FROM events e
        WHERE t.event_id = e.id
          AND t.status = $1
          AND t.reminded_at IS NULL
          AND e.event_date BETWEEN NOW() AND NOW() + make_interval(secs => $2)
        RETURNING t.id, t.user_id, t.event_id,
                  t.ticket_code, t.status, t.purchase_date, t.reminded_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.TicketStatusActive, window.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("mark reminders due: %w", err)
	}
	defer rows.Close()

	return scanTickets(rows)
}

// Легаси-CRUD: обходит проверку вместимости и все бизнес-правила.

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	query := `INSERT INTO tickets (id, user_id, event_id, ticket_code, status, purchase_date)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.UserID, t.EventID, t.TicketCode, t.Status, t.PurchaseDate,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) List(ctx context.Context) ([]*domain.Ticket, error) {
	query := `SELECT id, user_id, event_id, ticket_code, status, purchase_date, reminded_at
			  FROM tickets
			  ORDER BY purchase_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	return scanTickets(rows)
}

func (r *TicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	query := `UPDATE tickets
			  SET user_id = $2, event_id = $3, ticket_code = $4, purchase_date = $5
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.UserID, t.EventID, t.TicketCode, t.PurchaseDate,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tickets WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

func scanTickets(rows *sql.Rows) ([]*domain.Ticket, error) {
	var res []*domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.EventID,
			&t.TicketCode, &t.Status, &t.PurchaseDate, &t.RemindedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
