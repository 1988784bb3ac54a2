package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/isharanirmal/Onvent/internal/domain"
	"github.com/isharanirmal/Onvent/internal/service/ports"
)

// TicketService реализует легаси-путь прямого CRUD по билетам. Сознательно
// обходит проверку вместимости, владения и дат: у него другие гарантии,
// чем у BookingService, и объединять их нельзя.
type TicketService struct {
	repo ports.TicketRepo
}

func NewTicketService(repo ports.TicketRepo) *TicketService {
	return &TicketService{repo: repo}
}

func (s *TicketService) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	if t.UserID == "" || t.EventID == "" {
		return nil, fmt.Errorf("%w: user_id and event_id are required", domain.ErrValidation)
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.TicketCode == "" {
		t.TicketCode = domain.NewTicketCode()
	}
	if t.Status == "" {
		t.Status = domain.TicketStatusActive
	}
	if t.PurchaseDate.IsZero() {
		t.PurchaseDate = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	return t, nil
}

func (s *TicketService) List(ctx context.Context) ([]*domain.Ticket, error) {
	return s.repo.List(ctx)
}

func (s *TicketService) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TicketService) Update(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	existing, err := s.repo.GetByID(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	if t.UserID == "" {
		t.UserID = existing.UserID
	}
	if t.EventID == "" {
		t.EventID = existing.EventID
	}
	if t.TicketCode == "" {
		t.TicketCode = existing.TicketCode
	}
	if t.PurchaseDate.IsZero() {
		t.PurchaseDate = existing.PurchaseDate
	}
	t.Status = existing.Status

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}

	return t, nil
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}
