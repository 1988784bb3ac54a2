package ports

import (
	"context"
	"time"

	"github.com/isharanirmal/Onvent/internal/domain"
)

// TicketRepo владеет атомарной частью бронирования: проверка вместимости и
// вставка билета выполняются в одной транзакции (см. BookActive).
type TicketRepo interface {
	// BookActive atomically re-checks available seats for the ticket's event
	// and inserts the ticket. Returns seats remaining after the booking, or
	// *domain.InsufficientSeatsError when quantity seats are not available.
	BookActive(ctx context.Context, t *domain.Ticket, quantity int) (remaining int, err error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListActiveByUser(ctx context.Context, userID string) ([]*domain.Ticket, error)
	Cancel(ctx context.Context, id string) error
	MarkRemindersDue(ctx context.Context, window time.Duration) ([]*domain.Ticket, error)

	// Legacy CRUD path: no business rules, no capacity guarantees.
	Create(ctx context.Context, t *domain.Ticket) error
	List(ctx context.Context) ([]*domain.Ticket, error)
	Update(ctx context.Context, t *domain.Ticket) error
	Delete(ctx context.Context, id string) error
}
