package dto

import (
	"time"

	"github.com/isharanirmal/Onvent/internal/domain"
)

type BookingConfirmationResponse struct {
	TicketID       string  `json:"ticket_id"`
	TicketCode     string  `json:"ticket_code"`
	UserID         string  `json:"user_id"`
	UserName       string  `json:"user_name"`
	EventID        string  `json:"event_id"`
	EventTitle     string  `json:"event_title"`
	EventLocation  string  `json:"event_location"`
	EventDate      string  `json:"event_date"`
	EventPrice     float64 `json:"event_price"`
	PurchaseDate   string  `json:"purchase_date"`
	Status         string  `json:"status"`
	AvailableSeats int     `json:"available_seats"`
}

type AvailabilityResponse struct {
	EventID        string `json:"event_id"`
	EventTitle     string `json:"event_title"`
	MaxAttendees   int    `json:"max_attendees"`
	BookedSeats    int    `json:"booked_seats"`
	AvailableSeats int    `json:"available_seats"`
	HasCapacity    bool   `json:"has_capacity"`
}

type EventResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	EventDate    string  `json:"event_date"`
	Price        float64 `json:"price"`
	MaxAttendees int     `json:"max_attendees"`
	CreatedAt    string  `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type TicketResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	EventID      string `json:"event_id"`
	TicketCode   string `json:"ticket_code"`
	Status       string `json:"status"`
	PurchaseDate string `json:"purchase_date"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingConfirmationResponse(c *domain.BookingConfirmation) BookingConfirmationResponse {
	return BookingConfirmationResponse{
		TicketID:       c.TicketID,
		TicketCode:     c.TicketCode,
		UserID:         c.UserID,
		UserName:       c.UserName,
		EventID:        c.EventID,
		EventTitle:     c.EventTitle,
		EventLocation:  c.EventLocation,
		EventDate:      c.EventDate.Format(time.RFC3339),
		EventPrice:     c.EventPrice,
		PurchaseDate:   c.PurchaseDate.Format(time.RFC3339),
		Status:         string(c.Status),
		AvailableSeats: c.AvailableSeats,
	}
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		EventID:        a.EventID,
		EventTitle:     a.EventTitle,
		MaxAttendees:   a.MaxAttendees,
		BookedSeats:    a.BookedSeats,
		AvailableSeats: a.AvailableSeats,
		HasCapacity:    a.HasCapacity,
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Location:     e.Location,
		EventDate:    e.EventDate.Format(time.RFC3339),
		Price:        e.Price,
		MaxAttendees: e.MaxAttendees,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		EventID:      t.EventID,
		TicketCode:   t.TicketCode,
		Status:       string(t.Status),
		PurchaseDate: t.PurchaseDate.Format(time.RFC3339),
	}
}
