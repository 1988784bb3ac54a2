package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

var (
	ErrInsufficientSeats = errors.New("insufficient seats available")
	ErrPastEvent         = errors.New("event has already occurred")
	ErrNotTicketOwner    = errors.New("ticket belongs to another user")
	ErrAlreadyCancelled  = errors.New("ticket is already cancelled")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)

// InsufficientSeatsError несёт фактические числа, чтобы клиент увидел
// "Available: N, Requested: M", а не общий отказ.
type InsufficientSeatsError struct {
	Available int
	Requested int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("insufficient seats available. Available: %d, Requested: %d",
		e.Available, e.Requested)
}

func (e *InsufficientSeatsError) Is(target error) bool {
	return target == ErrInsufficientSeats
}
