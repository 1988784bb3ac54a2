package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/isharanirmal/Onvent/internal/domain"
	"github.com/isharanirmal/Onvent/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	ticketRepo ports.TicketRepo
	eventRepo  ports.EventRepo
	userRepo   ports.UserRepo
	renderer   ports.TicketRenderer
	mailer     ports.Mailer
	notifier   ports.BookingNotifier
	logger     logger.Logger
}

func NewBookingService(
	ticketRepo ports.TicketRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	renderer ports.TicketRenderer,
	mailer ports.Mailer,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		renderer:   renderer,
		mailer:     mailer,
		notifier:   notifier,
		logger:     logger,
	}
}

// Book бронирует место: проверки идут строго по порядку, первая ошибка
// выигрывает. Сама проверка вместимости и вставка билета атомарны на
// уровне репозитория.
func (s *BookingService) Book(ctx context.Context, userID, eventID string, quantity int) (*domain.BookingConfirmation, error) {
	if userID == "" || eventID == "" {
		return nil, fmt.Errorf("%w: user_id and event_id are required", domain.ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if event.IsPast(time.Now()) {
		return nil, fmt.Errorf("cannot book tickets for past events: %w", domain.ErrPastEvent)
	}

	// quantity участвует только в проверке вместимости; билет всегда один.
	ticket := &domain.Ticket{
		ID:           uuid.New().String(),
		UserID:       userID,
		EventID:      eventID,
		TicketCode:   domain.NewTicketCode(),
		Status:       domain.TicketStatusActive,
		PurchaseDate: time.Now().UTC(),
	}

	remaining, err := s.ticketRepo.BookActive(ctx, ticket, quantity)
	if err != nil {
		return nil, fmt.Errorf("book ticket: %w", err)
	}

	s.logger.Info("ticket booked",
		logger.String("ticket_id", ticket.ID),
		logger.String("ticket_code", ticket.TicketCode),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("seats_remaining", remaining),
	)

	go s.deliverConfirmation(context.WithoutCancel(ctx), user, event, ticket)

	return buildConfirmation(ticket, user, event, remaining), nil
}

// Availability делает чистое чтение, ту же агрегацию по активным билетам,
// что и внутри транзакции бронирования.
func (s *BookingService) Availability(ctx context.Context, eventID string) (*domain.Availability, error) {
	return s.eventRepo.GetAvailability(ctx, eventID)
}

// UserBookings возвращает активные билеты пользователя с доступностью
// мест на момент запроса. Неизвестный пользователь даёт пустой список,
// а не NotFound.
func (s *BookingService) UserBookings(ctx context.Context, userID string) ([]*domain.BookingConfirmation, error) {
	tickets, err := s.ticketRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user tickets: %w", err)
	}

	res := make([]*domain.BookingConfirmation, 0, len(tickets))
	if len(tickets) == 0 {
		return res, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	for _, t := range tickets {
		event, err := s.eventRepo.GetByID(ctx, t.EventID)
		if err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}

		availability, err := s.eventRepo.GetAvailability(ctx, t.EventID)
		if err != nil {
			return nil, fmt.Errorf("get availability: %w", err)
		}

		res = append(res, buildConfirmation(t, user, event, availability.AvailableSeats))
	}

	return res, nil
}

// Cancel переводит билет в терминальное состояние cancelled. Отмена
// освобождает место без компенсации счётчика: доступность пересчитается
// при следующем чтении.
func (s *BookingService) Cancel(ctx context.Context, ticketID, userID string) error {
	if ticketID == "" || userID == "" {
		return fmt.Errorf("%w: ticket_id and user_id are required", domain.ErrValidation)
	}

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("get ticket: %w", err)
	}

	if ticket.UserID != userID {
		return fmt.Errorf("you can only cancel your own bookings: %w", domain.ErrNotTicketOwner)
	}

	if ticket.Status == domain.TicketStatusCancelled {
		return domain.ErrAlreadyCancelled
	}

	event, err := s.eventRepo.GetByID(ctx, ticket.EventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if event.IsPast(time.Now()) {
		return fmt.Errorf("cannot cancel tickets for past events: %w", domain.ErrPastEvent)
	}

	if err = s.ticketRepo.Cancel(ctx, ticketID); err != nil {
		return fmt.Errorf("cancel ticket: %w", err)
	}

	s.logger.Info("ticket cancelled",
		logger.String("ticket_id", ticketID),
		logger.String("event_id", ticket.EventID),
		logger.String("user_id", userID),
	)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), user, event)

	return nil
}

// RemindUpcoming помечает активные билеты на скоро начинающиеся
// мероприятия и рассылает напоминания.
func (s *BookingService) RemindUpcoming(ctx context.Context, window time.Duration) ([]*domain.Ticket, error) {
	due, err := s.ticketRepo.MarkRemindersDue(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("mark reminders due: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("event reminders due",
			logger.Int("count", len(due)),
		)

		go s.notifyReminders(context.WithoutCancel(ctx), due)
	}

	return due, nil
}

func (s *BookingService) notifyReminders(ctx context.Context, tickets []*domain.Ticket) {
	for _, t := range tickets {
		user, err := s.userRepo.GetByID(ctx, t.UserID)
		if err != nil {
			s.logger.Error("failed to get user for reminder",
				logger.String("user_id", t.UserID),
			)
			continue
		}

		event, err := s.eventRepo.GetByID(ctx, t.EventID)
		if err != nil {
			s.logger.Error("failed to get event for reminder",
				logger.String("event_id", t.EventID),
			)
			continue
		}

		s.notifier.NotifyEventReminder(ctx, user, event)
	}
}

// deliverConfirmation выполняет побочные эффекты после фиксации брони: PDF-билет
// и письмо. Любая ошибка здесь логируется и не влияет на бронь.
func (s *BookingService) deliverConfirmation(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	pdf, err := s.renderer.Render(ticket, user, event)
	if err != nil {
		s.logger.Error("failed to render ticket pdf",
			logger.String("ticket_id", ticket.ID),
			logger.String("error", err.Error()),
		)
		pdf = nil
	}

	subject := "Booking Confirmation - " + event.Title
	body := confirmationHTML(user, event, ticket)
	if err := s.mailer.Send(ctx, user.Email, subject, body, pdf); err != nil {
		s.logger.Error("failed to send confirmation email",
			logger.String("ticket_id", ticket.ID),
			logger.String("email", user.Email),
			logger.String("error", err.Error()),
		)
	}

	s.notifier.NotifyBookingConfirmed(ctx, user, event, ticket)
}

func confirmationHTML(user *domain.User, event *domain.Event, ticket *domain.Ticket) string {
	return "<h2>Booking Confirmation</h2>" +
		"<p>Dear " + user.Name + ",</p>" +
		"<p>Your booking for the event <strong>" + event.Title + "</strong> has been confirmed.</p>" +
		"<p><strong>Booking Details:</strong></p>" +
		"<ul>" +
		"<li>Ticket ID: " + ticket.ID + "</li>" +
		"<li>Event: " + event.Title + "</li>" +
		"<li>Date: " + event.EventDate.Format(time.RFC1123) + "</li>" +
		"<li>Location: " + event.Location + "</li>" +
		"<li>Ticket Code: " + ticket.TicketCode + "</li>" +
		"</ul>" +
		"<p>Please find your ticket attached as a PDF file.</p>" +
		"<p>Thank you for using Onvent!</p>"
}

func buildConfirmation(t *domain.Ticket, u *domain.User, e *domain.Event, availableSeats int) *domain.BookingConfirmation {
	return &domain.BookingConfirmation{
		TicketID:       t.ID,
		TicketCode:     t.TicketCode,
		UserID:         u.ID,
		UserName:       u.Name,
		EventID:        e.ID,
		EventTitle:     e.Title,
		EventLocation:  e.Location,
		EventDate:      e.EventDate,
		EventPrice:     e.Price,
		PurchaseDate:   t.PurchaseDate,
		Status:         t.Status,
		AvailableSeats: availableSeats,
	}
}
