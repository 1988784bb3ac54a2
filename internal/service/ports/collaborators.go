package ports

import (
	"context"

	"github.com/isharanirmal/Onvent/internal/domain"
)

// TicketRenderer производит печатаемый артефакт (PDF) для билета.
type TicketRenderer interface {
	Render(ticket *domain.Ticket, user *domain.User, event *domain.Event) ([]byte, error)
}

// Mailer доставляет письмо с необязательным вложением. Ошибки доставки
// логируются вызывающей стороной и никогда не откатывают бронирование.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string, attachment []byte) error
}

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyEventReminder(ctx context.Context, user *domain.User, event *domain.Event)
}
