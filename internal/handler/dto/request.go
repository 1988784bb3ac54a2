package dto

type BookRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	EventID  string `json:"event_id" binding:"required,uuid"`
	Quantity *int   `json:"quantity" binding:"omitempty,gt=0"`
}

type CancelRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateEventRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Location     string  `json:"location" binding:"required"`
	EventDate    string  `json:"event_date" binding:"required"`
	Price        float64 `json:"price"`
	MaxAttendees int     `json:"max_attendees" binding:"required,gte=0"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

// TicketRequest описывает тело легаси-CRUD: клиент управляет полями напрямую.
type TicketRequest struct {
	UserID       string `json:"user_id" binding:"required,uuid"`
	EventID      string `json:"event_id" binding:"required,uuid"`
	TicketCode   string `json:"ticket_code"`
	Status       string `json:"status"`
	PurchaseDate string `json:"purchase_date"`
}
