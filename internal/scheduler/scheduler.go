package scheduler

import (
	"context"
	"time"

	"github.com/isharanirmal/Onvent/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	RemindUpcoming(ctx context.Context, window time.Duration) ([]*domain.Ticket, error)
}

// Scheduler периодически рассылает напоминания держателям активных
// билетов на скоро начинающиеся мероприятия.
type Scheduler struct {
	bookingService reminderSender
	interval       time.Duration
	window         time.Duration
	logger         logger.Logger
}

func New(
	bookingService reminderSender,
	interval time.Duration,
	window time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		window:         window,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("window", s.window),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.bookingService.RemindUpcoming(ctx, s.window)
	if err != nil {
		s.logger.Error("failed to send event reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, t := range reminded {
		s.logger.Info("reminder scheduled",
			logger.String("ticket_id", t.ID),
			logger.String("user_id", t.UserID),
			logger.String("event_id", t.EventID),
		)
	}
}
