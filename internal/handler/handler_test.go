package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/isharanirmal/Onvent/internal/domain"
	"github.com/isharanirmal/Onvent/internal/handler/dto"
	hmocks "github.com/isharanirmal/Onvent/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockEventSvc, *hmocks.MockUserSvc, *hmocks.MockTicketSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	eventSvc := hmocks.NewMockEventSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)
	ticketSvc := hmocks.NewMockTicketSvc(t)

	h := NewHandler(bookingSvc, eventSvc, userSvc, ticketSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.BookTicket)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/availability", h.GetAvailability)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.POST("/tickets", h.CreateTicket)
		api.GET("/tickets", h.ListTickets)
		api.GET("/tickets/:id", h.GetTicket)
		api.PUT("/tickets/:id", h.UpdateTicket)
		api.DELETE("/tickets/:id", h.DeleteTicket)
	}

	return bookingSvc, eventSvc, userSvc, ticketSvc, r
}

// --- Bookings ---

func TestHandler_BookTicket_Success(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()
	confirmation := &domain.BookingConfirmation{
		TicketID:       uuid.New().String(),
		TicketCode:     "TKT-AAAA1111",
		UserID:         userID,
		UserName:       "Alice",
		EventID:        eventID,
		EventTitle:     "Concert",
		EventDate:      time.Now().Add(24 * time.Hour),
		PurchaseDate:   time.Now(),
		Status:         domain.TicketStatusActive,
		AvailableSeats: 42,
	}

	bookingSvc.EXPECT().Book(mock.Anything, userID, eventID, 1).Return(confirmation, nil)

	body, _ := json.Marshal(dto.BookRequest{UserID: userID, EventID: eventID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingConfirmationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TKT-AAAA1111", resp.TicketCode)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 42, resp.AvailableSeats)
}

func TestHandler_BookTicket_ExplicitQuantity(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	bookingSvc.EXPECT().Book(mock.Anything, userID, eventID, 3).
		Return(&domain.BookingConfirmation{TicketID: "t1"}, nil)

	quantity := 3
	body, _ := json.Marshal(dto.BookRequest{UserID: userID, EventID: eventID, Quantity: &quantity})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_BookTicket_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	cases := []string{
		`{}`,
		`{"user_id":"not-a-uuid","event_id":"` + uuid.New().String() + `"}`,
		`{"user_id":"` + uuid.New().String() + `","event_id":"` + uuid.New().String() + `","quantity":0}`,
	}

	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestHandler_BookTicket_InsufficientSeats(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	bookingSvc.EXPECT().Book(mock.Anything, userID, eventID, 2).
		Return(nil, &domain.InsufficientSeatsError{Available: 1, Requested: 2})

	body, _ := json.Marshal(dto.BookRequest{UserID: userID, EventID: eventID, Quantity: intPtr(2)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Available: 1, Requested: 2")
}

func TestHandler_BookTicket_UserNotFound(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	bookingSvc.EXPECT().Book(mock.Anything, userID, eventID, 1).Return(nil, domain.ErrUserNotFound)

	body, _ := json.Marshal(dto.BookRequest{UserID: userID, EventID: eventID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_BookTicket_PastEvent(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	bookingSvc.EXPECT().Book(mock.Anything, userID, eventID, 1).Return(nil, domain.ErrPastEvent)

	body, _ := json.Marshal(dto.BookRequest{UserID: userID, EventID: eventID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	ticketID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, ticketID, userID).Return(nil)

	body, _ := json.Marshal(dto.CancelRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+ticketID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CancelRequest{UserID: uuid.New().String()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/not-a-uuid", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotOwner(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	ticketID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, ticketID, userID).Return(domain.ErrNotTicketOwner)

	body, _ := json.Marshal(dto.CancelRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+ticketID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_AlreadyCancelled(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	ticketID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, ticketID, userID).Return(domain.ErrAlreadyCancelled)

	body, _ := json.Marshal(dto.CancelRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+ticketID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_TicketNotFound(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	ticketID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, ticketID, userID).Return(domain.ErrTicketNotFound)

	body, _ := json.Marshal(dto.CancelRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+ticketID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Availability ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	availability := &domain.Availability{
		EventID:        eventID,
		EventTitle:     "Concert",
		MaxAttendees:   100,
		BookedSeats:    60,
		AvailableSeats: 40,
		HasCapacity:    true,
	}

	bookingSvc.EXPECT().Availability(mock.Anything, eventID).Return(availability, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 40, resp.AvailableSeats)
	assert.True(t, resp.HasCapacity)
}

func TestHandler_GetAvailability_EventNotFound(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	bookingSvc.EXPECT().Availability(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	_, eventSvc, _, _, r := setupRouter(t)

	when := time.Now().Add(72 * time.Hour)
	event := &domain.Event{
		ID:           uuid.New().String(),
		Title:        "Tech Conference",
		Location:     "Expo Center",
		EventDate:    when,
		Price:        99.99,
		MaxAttendees: 500,
		CreatedAt:    time.Now(),
	}

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:        "Tech Conference",
		Location:     "Expo Center",
		EventDate:    when.Format(time.RFC3339),
		Price:        99.99,
		MaxAttendees: 500,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tech Conference", resp.Title)
	assert.Equal(t, 500, resp.MaxAttendees)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","location":"Y","event_date":"not-a-date","max_attendees":10}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	_, eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetByID(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	_, eventSvc, _, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Title: "Event 1", EventDate: time.Now(), CreatedAt: time.Now()},
		{ID: "e2", Title: "Event 2", EventDate: time.Now(), CreatedAt: time.Now()},
	}
	eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "Alice", Email: "taken@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"Alice","email":"not-an-email"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.BookingConfirmation{
		{TicketID: "t1", UserID: userID, EventTitle: "Concert", Status: domain.TicketStatusActive},
	}

	bookingSvc.EXPECT().UserBookings(mock.Anything, userID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingConfirmationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_UnknownUserEmptyList(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookingSvc.EXPECT().UserBookings(mock.Anything, userID).Return([]*domain.BookingConfirmation{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

// --- Tickets (legacy CRUD) ---

func TestHandler_CreateTicket_Success(t *testing.T) {
	_, _, _, ticketSvc, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()
	created := &domain.Ticket{
		ID:           uuid.New().String(),
		UserID:       userID,
		EventID:      eventID,
		TicketCode:   "TKT-CCCC3333",
		Status:       domain.TicketStatusActive,
		PurchaseDate: time.Now(),
	}

	ticketSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(created, nil)

	body, _ := json.Marshal(dto.TicketRequest{UserID: userID, EventID: eventID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TKT-CCCC3333", resp.TicketCode)
}

func TestHandler_GetTicket_NotFound(t *testing.T) {
	_, _, _, ticketSvc, r := setupRouter(t)

	ticketID := uuid.New().String()
	ticketSvc.EXPECT().GetByID(mock.Anything, ticketID).Return(nil, domain.ErrTicketNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tickets/"+ticketID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateTicket_Success(t *testing.T) {
	_, _, _, ticketSvc, r := setupRouter(t)

	ticketID := uuid.New().String()
	userID := uuid.New().String()
	eventID := uuid.New().String()
	updated := &domain.Ticket{
		ID:      ticketID,
		UserID:  userID,
		EventID: eventID,
		Status:  domain.TicketStatusActive,
	}

	ticketSvc.EXPECT().Update(mock.Anything, mock.Anything).Return(updated, nil)

	body, _ := json.Marshal(dto.TicketRequest{UserID: userID, EventID: eventID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tickets/"+ticketID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteTicket_Success(t *testing.T) {
	_, _, _, ticketSvc, r := setupRouter(t)

	ticketID := uuid.New().String()
	ticketSvc.EXPECT().Delete(mock.Anything, ticketID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tickets/"+ticketID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteTicket_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tickets/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetByID(mock.Anything, eventID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func intPtr(v int) *int { return &v }
