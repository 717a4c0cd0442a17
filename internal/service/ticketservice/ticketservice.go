package ticketservice

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/GlebRadaev/railtickets/internal/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ticketservice.go -destination=mock_ticketservice.go -package=ticketservice

type Repo interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetRoute(ctx context.Context, id string) (*domain.Route, error)
	GetSeat(ctx context.Context, id string) (*domain.Seat, error)
	GetWagon(ctx context.Context, id string) (*domain.Wagon, error)
	CreateTicket(ctx context.Context, ticket *domain.Ticket) error
	GetTicket(ctx context.Context, id string) (*domain.Ticket, error)
	UpdateTicket(ctx context.Context, ticket *domain.Ticket) error
	TicketsForUser(ctx context.Context, userID string) ([]domain.Ticket, error)
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
}

type Inventory interface {
	SetAvailability(ctx context.Context, seatID string, available bool) error
}

// Service drives tickets through BOOKED -> PAID -> CANCELED. It keeps no
// state between calls; every operation re-reads storage. Each write pair is
// ordered primary record first, seat flag second, and nothing is rolled back
// when the second write fails.
type Service struct {
	repo      Repo
	inventory Inventory
	now       func() time.Time
}

func New(repo Repo, inventory Inventory) *Service {
	return &Service{
		repo:      repo,
		inventory: inventory,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

type CancelResult struct {
	Ticket    *domain.Ticket
	RefundDue bool
}

func fail(op string, err error) error {
	metrics.OperationFailures.WithLabelValues(op).Inc()
	return err
}

// Book reserves a free seat for an existing user. Two concurrent calls may both see the seat as
// available; the flag write is unconditional.
func (s *Service) Book(ctx context.Context, userID, routeID, seatID string) (*domain.Ticket, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, fail("book", err)
	}
	route, err := s.repo.GetRoute(ctx, routeID)
	if err != nil {
		return nil, fail("book", err)
	}
	seat, err := s.repo.GetSeat(ctx, seatID)
	if err != nil {
		return nil, fail("book", err)
	}
	wagon, err := s.repo.GetWagon(ctx, seat.WagonID)
	if err != nil {
		return nil, fail("book", err)
	}
	if wagon.TrainID != route.TrainID {
		return nil, fail("book", fmt.Errorf("%w: seat %s is not on the train of route %s", domain.ErrValidation, seatID, routeID))
	}
	if !seat.Available {
		zap.L().Info("seat is not available", zap.String("seat_id", seatID))
		return nil, fail("book", fmt.Errorf("seat %s: %w", seatID, domain.ErrSeatUnavailable))
	}

	ticket := &domain.Ticket{
		UserID:   userID,
		RouteID:  routeID,
		SeatID:   seatID,
		BookedAt: s.now(),
		Status:   domain.StatusBooked,
		Price:    route.BasePrice * seat.PriceMultiplier,
	}
	if err := s.repo.CreateTicket(ctx, ticket); err != nil {
		zap.L().Error("can't create ticket", zap.Error(err))
		return nil, fail("book", err)
	}
	if err := s.inventory.SetAvailability(ctx, seatID, false); err != nil {
		zap.L().Error("ticket created but seat still marked available",
			zap.String("ticket_id", ticket.ID), zap.String("seat_id", seatID), zap.Error(err))
		return nil, fail("book", err)
	}

	metrics.TicketEvents.WithLabelValues(metrics.EventBooked).Inc()
	zap.L().Info("ticket booked", zap.String("ticket_id", ticket.ID), zap.String("seat_id", seatID))
	return ticket, nil
}

// Pay records a transaction for the full ticket price and marks the ticket
// PAID. Only a BOOKED ticket can be paid.
func (s *Service) Pay(ctx context.Context, ticketID, paymentMethod string) (*domain.Transaction, error) {
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, fail("pay", fmt.Errorf("%w: payment method is required", domain.ErrValidation))
	}
	ticket, err := s.repo.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, fail("pay", err)
	}
	if err := ticket.Status.Transition(domain.StatusPaid); err != nil {
		zap.L().Info("ticket can't be paid", zap.String("ticket_id", ticketID), zap.String("status", string(ticket.Status)))
		return nil, fail("pay", err)
	}

	tx := &domain.Transaction{
		TicketID:      ticket.ID,
		Amount:        ticket.Price,
		PaymentMethod: paymentMethod,
		CreatedAt:     s.now(),
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		zap.L().Error("can't create transaction", zap.Error(err))
		return nil, fail("pay", err)
	}
	ticket.Status = domain.StatusPaid
	if err := s.repo.UpdateTicket(ctx, ticket); err != nil {
		zap.L().Error("transaction recorded but ticket not marked paid",
			zap.String("ticket_id", ticketID), zap.String("transaction_id", tx.ID), zap.Error(err))
		return nil, fail("pay", err)
	}

	metrics.TicketEvents.WithLabelValues(metrics.EventPaid).Inc()
	zap.L().Info("ticket paid", zap.String("ticket_id", ticketID), zap.Float64("amount", tx.Amount))
	return tx, nil
}

// Cancel moves a BOOKED or PAID ticket to CANCELED and returns the seat to
// sale. A refund is due when the ticket had been paid.
func (s *Service) Cancel(ctx context.Context, ticketID string) (*CancelResult, error) {
	return s.cancel(ctx, "cancel", ticketID, domain.StatusBooked, domain.StatusPaid)
}

// Expire cancels a ticket only while it is still BOOKED. A ticket paid after
// it was picked for expiry yields ErrInvalidTransition and is left alone.
func (s *Service) Expire(ctx context.Context, ticketID string) (*CancelResult, error) {
	return s.cancel(ctx, "expire", ticketID, domain.StatusBooked)
}

func (s *Service) cancel(ctx context.Context, op, ticketID string, from ...domain.TicketStatus) (*CancelResult, error) {
	ticket, err := s.repo.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, fail(op, err)
	}
	prior := ticket.Status
	err = prior.Transition(domain.StatusCanceled)
	if err == nil && !slices.Contains(from, prior) {
		err = fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, prior, domain.StatusCanceled)
	}
	if err != nil {
		zap.L().Info("ticket can't be canceled", zap.String("ticket_id", ticketID), zap.String("status", string(prior)))
		return nil, fail(op, err)
	}

	ticket.Status = domain.StatusCanceled
	if err := s.repo.UpdateTicket(ctx, ticket); err != nil {
		zap.L().Error("can't cancel ticket", zap.Error(err))
		return nil, fail(op, err)
	}
	if err := s.inventory.SetAvailability(ctx, ticket.SeatID, true); err != nil {
		zap.L().Error("ticket canceled but seat still marked unavailable",
			zap.String("ticket_id", ticketID), zap.String("seat_id", ticket.SeatID), zap.Error(err))
		return nil, fail(op, err)
	}

	result := &CancelResult{Ticket: ticket, RefundDue: prior == domain.StatusPaid}
	metrics.TicketEvents.WithLabelValues(metrics.EventCanceled).Inc()
	if result.RefundDue {
		metrics.TicketEvents.WithLabelValues(metrics.EventRefunded).Inc()
	}
	zap.L().Info("ticket canceled", zap.String("ticket_id", ticketID), zap.Bool("refund_due", result.RefundDue))
	return result, nil
}

func (s *Service) Get(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.repo.GetTicket(ctx, ticketID)
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	tickets, err := s.repo.TicketsForUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get tickets", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return tickets, nil
}
