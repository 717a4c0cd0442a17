package domain

import "fmt"

type TicketStatus string

const (
	// StatusBooked билет забронирован, место занято, оплата не поступила.
	StatusBooked TicketStatus = "BOOKED"
	// StatusPaid билет оплачен.
	StatusPaid TicketStatus = "PAID"
	// StatusCanceled билет отменён, место возвращено в продажу.
	StatusCanceled TicketStatus = "CANCELED"
)

var transitions = map[TicketStatus][]TicketStatus{
	StatusBooked: {StatusPaid, StatusCanceled},
	StatusPaid:   {StatusCanceled},
}

func ParseTicketStatus(s string) (TicketStatus, error) {
	switch st := TicketStatus(s); st {
	case StatusBooked, StatusPaid, StatusCanceled:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown ticket status %q", ErrValidation, s)
}

// CanTransition reports whether a ticket may move from one status to another.
func (s TicketStatus) CanTransition(to TicketStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates the move and returns ErrInvalidTransition when it is not allowed.
func (s TicketStatus) Transition(to TicketStatus) error {
	if !s.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
	return nil
}

// Active is true for statuses that hold a seat.
func (s TicketStatus) Active() bool {
	return s == StatusBooked || s == StatusPaid
}
