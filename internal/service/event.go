package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/isharanirmal/Onvent/internal/domain"
	"github.com/isharanirmal/Onvent/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.MaxAttendees < 0 {
		return nil, fmt.Errorf("%w: max_attendees must not be negative", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		EventDate:    input.EventDate,
		Price:        input.Price,
		MaxAttendees: input.MaxAttendees,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
