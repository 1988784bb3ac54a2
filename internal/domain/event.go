package domain

import "time"

type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	EventDate    time.Time `json:"event_date"`
	Price        float64   `json:"price"`
	MaxAttendees int       `json:"max_attendees"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsPast сообщает, что мероприятие уже прошло относительно now.
func (e *Event) IsPast(now time.Time) bool {
	return e.EventDate.Before(now)
}

type CreateEventInput struct {
	Title        string
	Description  string
	Location     string
	EventDate    time.Time
	Price        float64
	MaxAttendees int
}
