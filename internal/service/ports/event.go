package ports

import (
	"context"

	"github.com/isharanirmal/Onvent/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	// GetAvailability derives booked/available seats from the live count of
	// active tickets. The same derivation the booking transaction uses.
	GetAvailability(ctx context.Context, eventID string) (*domain.Availability, error)
}
