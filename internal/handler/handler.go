package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/isharanirmal/Onvent/internal/domain"
	"github.com/isharanirmal/Onvent/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Book(ctx context.Context, userID, eventID string, quantity int) (*domain.BookingConfirmation, error)
	Availability(ctx context.Context, eventID string) (*domain.Availability, error)
	UserBookings(ctx context.Context, userID string) ([]*domain.BookingConfirmation, error)
	Cancel(ctx context.Context, ticketID, userID string) error
}

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type TicketSvc interface {
	Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	List(ctx context.Context) ([]*domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Update(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	bookingService BookingSvc
	eventService   EventSvc
	userService    UserSvc
	ticketService  TicketSvc
}

func NewHandler(bookingService BookingSvc, eventService EventSvc, userService UserSvc, ticketService TicketSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		eventService:   eventService,
		userService:    userService,
		ticketService:  ticketService,
	}
}

// Bookings

func (h *Handler) BookTicket(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	confirmation, err := h.bookingService.Book(c.Request.Context(), req.UserID, req.EventID, quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingConfirmationResponse(confirmation))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	ticketID := c.Param("id")
	if _, err := uuid.Parse(ticketID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), ticketID, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "Booking cancelled successfully"})
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	availability, err := h.bookingService.Availability(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.UserBookings(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingConfirmationResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingConfirmationResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		EventDate:    eventDate,
		Price:        req.Price,
		MaxAttendees: req.MaxAttendees,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Легаси-CRUD по билетам: без проверок вместимости и владения.

func (h *Handler) CreateTicket(c *ginext.Context) {
	ticket, ok := h.bindTicket(c, "")
	if !ok {
		return
	}

	created, err := h.ticketService.Create(c.Request.Context(), ticket)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(created))
}

func (h *Handler) ListTickets(c *ginext.Context) {
	tickets, err := h.ticketService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTicket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	ticket, err := h.ticketService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) UpdateTicket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	ticket, ok := h.bindTicket(c, id)
	if !ok {
		return
	}

	updated, err := h.ticketService.Update(c.Request.Context(), ticket)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(updated))
}

func (h *Handler) DeleteTicket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	if err := h.ticketService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) bindTicket(c *ginext.Context, id string) (*domain.Ticket, bool) {
	var req dto.TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}

	ticket := &domain.Ticket{
		ID:         id,
		UserID:     req.UserID,
		EventID:    req.EventID,
		TicketCode: req.TicketCode,
		Status:     domain.TicketStatus(req.Status),
	}
	if req.PurchaseDate != "" {
		purchaseDate, err := time.Parse(time.RFC3339, req.PurchaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid purchase_date format, expected RFC3339",
			})
			return nil, false
		}
		ticket.PurchaseDate = purchaseDate
	}

	return ticket, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientSeats):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPastEvent),
		errors.Is(err, domain.ErrNotTicketOwner),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
