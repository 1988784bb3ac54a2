package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusActive    TicketStatus = "active"
	TicketStatusCancelled TicketStatus = "cancelled"
)

type Ticket struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	EventID      string       `json:"event_id"`
	TicketCode   string       `json:"ticket_code"`
	Status       TicketStatus `json:"status"`
	PurchaseDate time.Time    `json:"purchase_date"`
	RemindedAt   *time.Time   `json:"reminded_at,omitempty"`
}

// NewTicketCode генерирует человекочитаемый код вида TKT-1A2B3C4D.
func NewTicketCode() string {
	return "TKT-" + strings.ToUpper(uuid.New().String()[:8])
}

// BookingConfirmation собирает полный ответ на успешное бронирование.
type BookingConfirmation struct {
	TicketID       string       `json:"ticket_id"`
	TicketCode     string       `json:"ticket_code"`
	UserID         string       `json:"user_id"`
	UserName       string       `json:"user_name"`
	EventID        string       `json:"event_id"`
	EventTitle     string       `json:"event_title"`
	EventLocation  string       `json:"event_location"`
	EventDate      time.Time    `json:"event_date"`
	EventPrice     float64      `json:"event_price"`
	PurchaseDate   time.Time    `json:"purchase_date"`
	Status         TicketStatus `json:"status"`
	AvailableSeats int          `json:"available_seats"`
}

type Availability struct {
	EventID        string `json:"event_id"`
	EventTitle     string `json:"event_title"`
	MaxAttendees   int    `json:"max_attendees"`
	BookedSeats    int    `json:"booked_seats"`
	AvailableSeats int    `json:"available_seats"`
	HasCapacity    bool   `json:"has_capacity"`
}
