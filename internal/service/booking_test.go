package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/isharanirmal/Onvent/internal/domain"
	"github.com/isharanirmal/Onvent/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingFixture(t *testing.T) (*BookingService, *mocks.MockTicketRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockTicketRenderer, *mocks.MockMailer, *mocks.MockBookingNotifier) {
	t.Helper()
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	renderer := mocks.NewMockTicketRenderer(t)
	mailer := mocks.NewMockMailer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(ticketRepo, eventRepo, userRepo, renderer, mailer, notifier, log)
	return svc, ticketRepo, eventRepo, userRepo, renderer, mailer, notifier
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, renderer, mailer, notifier := newBookingFixture(t)

	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	event := &domain.Event{
		ID:           "e1",
		Title:        "Concert",
		Location:     "Main Hall",
		EventDate:    time.Now().Add(48 * time.Hour),
		Price:        25.50,
		MaxAttendees: 100,
	}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	ticketRepo.EXPECT().BookActive(mock.Anything, mock.Anything, 1).Return(99, nil)
	renderer.EXPECT().Render(mock.Anything, user, event).Return([]byte("pdf"), nil)
	mailer.EXPECT().Send(mock.Anything, "alice@example.com", mock.Anything, mock.Anything, []byte("pdf")).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, event, mock.Anything).Return()

	confirmation, err := svc.Book(context.Background(), "u1", "e1", 1)

	require.NoError(t, err)
	assert.NotEmpty(t, confirmation.TicketID)
	assert.True(t, strings.HasPrefix(confirmation.TicketCode, "TKT-"))
	assert.Equal(t, "u1", confirmation.UserID)
	assert.Equal(t, "Alice", confirmation.UserName)
	assert.Equal(t, "e1", confirmation.EventID)
	assert.Equal(t, "Concert", confirmation.EventTitle)
	assert.Equal(t, domain.TicketStatusActive, confirmation.Status)
	assert.Equal(t, 99, confirmation.AvailableSeats)

	time.Sleep(50 * time.Millisecond) // goroutine side effects
}

func TestBookingService_Book_SideEffectFailuresDoNotPropagate(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, renderer, mailer, notifier := newBookingFixture(t)

	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	event := &domain.Event{ID: "e1", Title: "Concert", EventDate: time.Now().Add(time.Hour)}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	ticketRepo.EXPECT().BookActive(mock.Anything, mock.Anything, 1).Return(0, nil)
	renderer.EXPECT().Render(mock.Anything, user, event).Return(nil, errors.New("pdf error"))
	mailer.EXPECT().Send(mock.Anything, "alice@example.com", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp error"))
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, event, mock.Anything).Return()

	confirmation, err := svc.Book(context.Background(), "u1", "e1", 1)

	require.NoError(t, err)
	assert.NotEmpty(t, confirmation.TicketID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_Validation(t *testing.T) {
	svc, _, _, _, _, _, _ := newBookingFixture(t)

	_, err := svc.Book(context.Background(), "", "e1", 1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Book(context.Background(), "u1", "", 1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Book(context.Background(), "u1", "e1", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	svc, _, _, userRepo, _, _, _ := newBookingFixture(t)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Book(context.Background(), "missing", "e1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Book_EventNotFound(t *testing.T) {
	svc, _, eventRepo, userRepo, _, _, _ := newBookingFixture(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Book(context.Background(), "u1", "missing", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Book_PastEvent(t *testing.T) {
	svc, _, eventRepo, userRepo, _, _, _ := newBookingFixture(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:        "e1",
		EventDate: time.Now().Add(-time.Hour),
	}, nil)

	_, err := svc.Book(context.Background(), "u1", "e1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPastEvent)
}

func TestBookingService_Book_InsufficientSeats(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _, _, _ := newBookingFixture(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:        "e1",
		EventDate: time.Now().Add(time.Hour),
	}, nil)
	ticketRepo.EXPECT().BookActive(mock.Anything, mock.Anything, 3).
		Return(0, &domain.InsufficientSeatsError{Available: 1, Requested: 3})

	_, err := svc.Book(context.Background(), "u1", "e1", 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientSeats)
	assert.Contains(t, err.Error(), "Available: 1, Requested: 3")
}

func TestBookingService_Availability(t *testing.T) {
	svc, _, eventRepo, _, _, _, _ := newBookingFixture(t)

	want := &domain.Availability{
		EventID:        "e1",
		MaxAttendees:   100,
		BookedSeats:    40,
		AvailableSeats: 60,
		HasCapacity:    true,
	}
	eventRepo.EXPECT().GetAvailability(mock.Anything, "e1").Return(want, nil)

	got, err := svc.Availability(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBookingService_UserBookings_Success(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _, _, _ := newBookingFixture(t)

	tickets := []*domain.Ticket{
		{ID: "t1", UserID: "u1", EventID: "e1", TicketCode: "TKT-AAAA1111", Status: domain.TicketStatusActive},
		{ID: "t2", UserID: "u1", EventID: "e2", TicketCode: "TKT-BBBB2222", Status: domain.TicketStatusActive},
	}
	user := &domain.User{ID: "u1", Name: "Alice"}
	event1 := &domain.Event{ID: "e1", Title: "Concert"}
	event2 := &domain.Event{ID: "e2", Title: "Workshop"}

	ticketRepo.EXPECT().ListActiveByUser(mock.Anything, "u1").Return(tickets, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event1, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e2").Return(event2, nil)
	eventRepo.EXPECT().GetAvailability(mock.Anything, "e1").Return(&domain.Availability{EventID: "e1", AvailableSeats: 5}, nil)
	eventRepo.EXPECT().GetAvailability(mock.Anything, "e2").Return(&domain.Availability{EventID: "e2", AvailableSeats: 0}, nil)

	result, err := svc.UserBookings(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Concert", result[0].EventTitle)
	assert.Equal(t, 5, result[0].AvailableSeats)
	assert.Equal(t, "Workshop", result[1].EventTitle)
	assert.Equal(t, 0, result[1].AvailableSeats)
}

func TestBookingService_UserBookings_UnknownUserEmptyList(t *testing.T) {
	svc, ticketRepo, _, _, _, _, _ := newBookingFixture(t)

	ticketRepo.EXPECT().ListActiveByUser(mock.Anything, "ghost").Return(nil, nil)

	result, err := svc.UserBookings(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _, _, notifier := newBookingFixture(t)

	ticket := &domain.Ticket{ID: "t1", UserID: "u1", EventID: "e1", Status: domain.TicketStatusActive}
	event := &domain.Event{ID: "e1", Title: "Concert", EventDate: time.Now().Add(time.Hour)}
	user := &domain.User{ID: "u1", Name: "Alice"}

	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	ticketRepo.EXPECT().Cancel(mock.Anything, "t1").Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, event).Return()

	err := svc.Cancel(context.Background(), "t1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Cancel_TicketNotFound(t *testing.T) {
	svc, ticketRepo, _, _, _, _, _ := newBookingFixture(t)

	ticketRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTicketNotFound)

	err := svc.Cancel(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	svc, ticketRepo, _, _, _, _, _ := newBookingFixture(t)

	ticket := &domain.Ticket{ID: "t1", UserID: "u1", EventID: "e1", Status: domain.TicketStatusActive}
	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	err := svc.Cancel(context.Background(), "t1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotTicketOwner)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, ticketRepo, _, _, _, _, _ := newBookingFixture(t)

	ticket := &domain.Ticket{ID: "t1", UserID: "u1", EventID: "e1", Status: domain.TicketStatusCancelled}
	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	err := svc.Cancel(context.Background(), "t1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_PastEvent(t *testing.T) {
	svc, ticketRepo, eventRepo, _, _, _, _ := newBookingFixture(t)

	ticket := &domain.Ticket{ID: "t1", UserID: "u1", EventID: "e1", Status: domain.TicketStatusActive}
	event := &domain.Event{ID: "e1", EventDate: time.Now().Add(-time.Hour)}

	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	err := svc.Cancel(context.Background(), "t1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPastEvent)
}

func TestBookingService_Cancel_OwnershipCheckedBeforeStatus(t *testing.T) {
	svc, ticketRepo, _, _, _, _, _ := newBookingFixture(t)

	// Чужой отменённый билет: ошибка владения, а не повторной отмены.
	ticket := &domain.Ticket{ID: "t1", UserID: "u1", EventID: "e1", Status: domain.TicketStatusCancelled}
	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	err := svc.Cancel(context.Background(), "t1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotTicketOwner)
}

func TestBookingService_RemindUpcoming_Success(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _, _, notifier := newBookingFixture(t)

	due := []*domain.Ticket{
		{ID: "t1", UserID: "u1", EventID: "e1"},
		{ID: "t2", UserID: "u2", EventID: "e2"},
	}
	user1 := &domain.User{ID: "u1"}
	user2 := &domain.User{ID: "u2"}
	event1 := &domain.Event{ID: "e1", Title: "Event 1"}
	event2 := &domain.Event{ID: "e2", Title: "Event 2"}

	ticketRepo.EXPECT().MarkRemindersDue(mock.Anything, 24*time.Hour).Return(due, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user1, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(user2, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event1, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e2").Return(event2, nil)
	notifier.EXPECT().NotifyEventReminder(mock.Anything, user1, event1).Return()
	notifier.EXPECT().NotifyEventReminder(mock.Anything, user2, event2).Return()

	result, err := svc.RemindUpcoming(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_RemindUpcoming_NoneDue(t *testing.T) {
	svc, ticketRepo, _, _, _, _, _ := newBookingFixture(t)

	ticketRepo.EXPECT().MarkRemindersDue(mock.Anything, 24*time.Hour).Return(nil, nil)

	result, err := svc.RemindUpcoming(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_RemindUpcoming_RepoError(t *testing.T) {
	svc, ticketRepo, _, _, _, _, _ := newBookingFixture(t)

	ticketRepo.EXPECT().MarkRemindersDue(mock.Anything, 24*time.Hour).Return(nil, errors.New("db error"))

	_, err := svc.RemindUpcoming(context.Background(), 24*time.Hour)

	require.Error(t, err)
}
