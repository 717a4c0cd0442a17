package dto

import (
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
)

type BookRequestDTO struct {
	RouteID string `json:"route_id"`
	SeatID  string `json:"seat_id"`
}

type TicketResponseDTO struct {
	ID       string            `json:"id"`
	RouteID  string            `json:"route_id"`
	SeatID   string            `json:"seat_id"`
	Status   string            `json:"status" example:"BOOKED"`
	Price    float64           `json:"price" example:"1500"`
	BookedAt string            `json:"booked_at" example:"2024-04-20T10:15:00Z"`
	Route    *RouteResponseDTO `json:"route,omitempty"`
}

func NewTicketResponse(t *domain.Ticket) TicketResponseDTO {
	return TicketResponseDTO{
		ID:       t.ID,
		RouteID:  t.RouteID,
		SeatID:   t.SeatID,
		Status:   string(t.Status),
		Price:    t.Price,
		BookedAt: t.BookedAt.Format(time.RFC3339),
	}
}

// PayRequestDTO carries a simulated payment. CardNumber is required for the
// card method only.
type PayRequestDTO struct {
	Method     string `json:"method" example:"card"`
	CardNumber string `json:"card_number,omitempty" example:"4111111111111111"`
}

type TransactionResponseDTO struct {
	ID            string  `json:"id"`
	TicketID      string  `json:"ticket_id"`
	Amount        float64 `json:"amount" example:"1500"`
	PaymentMethod string  `json:"payment_method" example:"card"`
	CreatedAt     string  `json:"created_at" example:"2024-04-20T10:20:00Z"`
}

func NewTransactionResponse(tx *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:            tx.ID,
		TicketID:      tx.TicketID,
		Amount:        tx.Amount,
		PaymentMethod: tx.PaymentMethod,
		CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
	}
}

type CancelResponseDTO struct {
	Ticket    TicketResponseDTO `json:"ticket"`
	RefundDue bool              `json:"refund_due"`
}
