package pgrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/jackc/pgx/v5"
)

const (
	insertTicketQuery = `
		INSERT INTO tickets (id, user_id, route_id, seat_id, booked_at, status, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	selectTicketQuery = `
		SELECT id, user_id, route_id, seat_id, booked_at, status, price
		FROM tickets
		WHERE id = $1
	`
	updateTicketStatusQuery = "UPDATE tickets SET status = $1 WHERE id = $2"
	selectUserTicketsQuery  = `
		SELECT id, user_id, route_id, seat_id, booked_at, status, price
		FROM tickets
		WHERE user_id = $1
		ORDER BY booked_at, id
	`
	selectTicketsByStatusQuery = `
		SELECT id, user_id, route_id, seat_id, booked_at, status, price
		FROM tickets
		WHERE status = $1
		ORDER BY booked_at, id
	`
)

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		t      domain.Ticket
		status string
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.RouteID, &t.SeatID, &t.BookedAt, &status, &t.Price); err != nil {
		return nil, err
	}
	st, err := domain.ParseTicketStatus(status)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", t.ID, err)
	}
	t.Status = st
	return &t, nil
}

func (r *Repository) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	r.assignID(&ticket.ID)
	_, err := r.db.Exec(ctx, insertTicketQuery,
		ticket.ID, ticket.UserID, ticket.RouteID, ticket.SeatID,
		ticket.BookedAt.UTC(), string(ticket.Status), ticket.Price,
	)
	if err != nil {
		return insertErr("create ticket", "ticket", ticket.ID, err)
	}
	return nil
}

func (r *Repository) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := scanTicket(r.db.QueryRow(ctx, selectTicketQuery, id))
	if err != nil {
		return nil, rowErr("get ticket", "ticket", id, err)
	}
	return ticket, nil
}

// UpdateTicket persists the ticket status. References, booking time and
// price are frozen at creation.
func (r *Repository) UpdateTicket(ctx context.Context, ticket *domain.Ticket) error {
	tag, err := r.db.Exec(ctx, updateTicketStatusQuery, string(ticket.Status), ticket.ID)
	return affectedOne("update ticket", "ticket", ticket.ID, tag, err)
}

func (r *Repository) TicketsForUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	return r.queryTickets(ctx, "tickets for user", selectUserTicketsQuery, userID)
}

func (r *Repository) TicketsByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	return r.queryTickets(ctx, "tickets by status", selectTicketsByStatusQuery, string(status))
}

func (r *Repository) queryTickets(ctx context.Context, op, query string, arg any) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, storageErr(op, err)
		}
		tickets = append(tickets, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return tickets, nil
}
