package ticketservice

import (
	"context"
	"testing"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
	csvrepo "github.com/GlebRadaev/railtickets/internal/repo/csv-repo"
	"github.com/GlebRadaev/railtickets/internal/service/inventoryservice"
	"github.com/stretchr/testify/suite"
)

// LifecycleSuite runs the controller against the file backend and checks
// the seat flag against active tickets after every step.
type LifecycleSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *csvrepo.Repository
	service *Service
	route   domain.Route
	seat    domain.Seat
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(LifecycleSuite))
}

func (s *LifecycleSuite) SetupTest() {
	s.ctx = context.Background()
	repo, err := csvrepo.New(s.T().TempDir(), nil)
	s.Require().NoError(err)
	s.repo = repo
	s.service = New(repo, inventoryservice.New(repo))

	for _, id := range []string{"u-1", "u-2"} {
		user := domain.User{ID: id, Surname: "Petrov", Name: "Petr", Email: id + "@example.com", Password: "hash"}
		s.Require().NoError(repo.CreateUser(s.ctx, &user))
	}

	train := domain.Train{Number: "020U", Type: "sapsan", WagonCount: 1}
	s.Require().NoError(repo.CreateTrain(s.ctx, &train))
	wagon := domain.Wagon{TrainID: train.ID, Number: 1, Type: "seated", SeatCount: 1}
	s.Require().NoError(repo.CreateWagon(s.ctx, &wagon))
	s.seat = domain.Seat{WagonID: wagon.ID, Number: 1, Available: true, PriceMultiplier: 1.5}
	s.Require().NoError(repo.CreateSeat(s.ctx, &s.seat))

	from := domain.Station{Name: "Leningradsky", City: "Moscow"}
	to := domain.Station{Name: "Moskovsky", City: "Saint Petersburg"}
	s.Require().NoError(repo.CreateStation(s.ctx, &from))
	s.Require().NoError(repo.CreateStation(s.ctx, &to))
	dep := time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)
	s.route = domain.Route{
		DepartureStationID: from.ID,
		ArrivalStationID:   to.ID,
		TrainID:            train.ID,
		DepartureTime:      dep,
		ArrivalTime:        dep.Add(4 * time.Hour),
		BasePrice:          1000,
	}
	s.Require().NoError(repo.CreateRoute(s.ctx, &s.route))
}

// assertSeatConsistent checks that the seat is unavailable exactly when an
// active ticket references it.
func (s *LifecycleSuite) assertSeatConsistent(userIDs ...string) {
	seat, err := s.repo.GetSeat(s.ctx, s.seat.ID)
	s.Require().NoError(err)

	active := false
	for _, userID := range userIDs {
		tickets, err := s.repo.TicketsForUser(s.ctx, userID)
		s.Require().NoError(err)
		for _, t := range tickets {
			if t.SeatID == s.seat.ID && t.Status.Active() {
				active = true
			}
		}
	}
	s.Equal(!active, seat.Available)
}

func (s *LifecycleSuite) TestBookPayCancel() {
	ticket, err := s.service.Book(s.ctx, "u-1", s.route.ID, s.seat.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusBooked, ticket.Status)
	s.Equal(1500.0, ticket.Price)
	s.assertSeatConsistent("u-1")

	tx, err := s.service.Pay(s.ctx, ticket.ID, "card")
	s.Require().NoError(err)
	s.Equal(ticket.Price, tx.Amount)
	txs, err := s.repo.TransactionsForTicket(s.ctx, ticket.ID)
	s.Require().NoError(err)
	s.Len(txs, 1)
	stored, err := s.service.Get(s.ctx, ticket.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusPaid, stored.Status)
	s.assertSeatConsistent("u-1")

	result, err := s.service.Cancel(s.ctx, ticket.ID)
	s.Require().NoError(err)
	s.True(result.RefundDue)
	s.Equal(domain.StatusCanceled, result.Ticket.Status)
	s.assertSeatConsistent("u-1")
}

func (s *LifecycleSuite) TestSecondBookingFails() {
	_, err := s.service.Book(s.ctx, "u-1", s.route.ID, s.seat.ID)
	s.Require().NoError(err)

	_, err = s.service.Book(s.ctx, "u-2", s.route.ID, s.seat.ID)
	s.ErrorIs(err, domain.ErrSeatUnavailable)

	tickets, err := s.repo.TicketsForUser(s.ctx, "u-2")
	s.Require().NoError(err)
	s.Empty(tickets)
	s.assertSeatConsistent("u-1", "u-2")
}

func (s *LifecycleSuite) TestPayTwice() {
	ticket, err := s.service.Book(s.ctx, "u-1", s.route.ID, s.seat.ID)
	s.Require().NoError(err)

	_, err = s.service.Pay(s.ctx, ticket.ID, "wallet")
	s.Require().NoError(err)
	_, err = s.service.Pay(s.ctx, ticket.ID, "wallet")
	s.ErrorIs(err, domain.ErrInvalidTransition)

	txs, err := s.repo.TransactionsForTicket(s.ctx, ticket.ID)
	s.Require().NoError(err)
	s.Len(txs, 1)
}

func (s *LifecycleSuite) TestCancelTwiceLeavesSeatFlag() {
	ticket, err := s.service.Book(s.ctx, "u-1", s.route.ID, s.seat.ID)
	s.Require().NoError(err)
	result, err := s.service.Cancel(s.ctx, ticket.ID)
	s.Require().NoError(err)
	s.False(result.RefundDue)

	// Someone else takes the freed seat; a repeated cancel must not free it.
	other, err := s.service.Book(s.ctx, "u-2", s.route.ID, s.seat.ID)
	s.Require().NoError(err)

	_, err = s.service.Cancel(s.ctx, ticket.ID)
	s.ErrorIs(err, domain.ErrInvalidTransition)
	seat, err := s.repo.GetSeat(s.ctx, s.seat.ID)
	s.Require().NoError(err)
	s.False(seat.Available)
	s.Equal(domain.StatusBooked, other.Status)
	s.assertSeatConsistent("u-1", "u-2")
}

func (s *LifecycleSuite) TestBookUnknownUser() {
	_, err := s.service.Book(s.ctx, "u-missing", s.route.ID, s.seat.ID)
	s.ErrorIs(err, domain.ErrNotFound)

	tickets, err := s.repo.TicketsForUser(s.ctx, "u-missing")
	s.Require().NoError(err)
	s.Empty(tickets)
	seat, err := s.repo.GetSeat(s.ctx, s.seat.ID)
	s.Require().NoError(err)
	s.True(seat.Available)
}

func (s *LifecycleSuite) TestExpireBooked() {
	ticket, err := s.service.Book(s.ctx, "u-1", s.route.ID, s.seat.ID)
	s.Require().NoError(err)

	result, err := s.service.Expire(s.ctx, ticket.ID)
	s.Require().NoError(err)
	s.False(result.RefundDue)
	s.Equal(domain.StatusCanceled, result.Ticket.Status)
	s.assertSeatConsistent("u-1")
}

func (s *LifecycleSuite) TestExpireLeavesPaidTicket() {
	ticket, err := s.service.Book(s.ctx, "u-1", s.route.ID, s.seat.ID)
	s.Require().NoError(err)
	_, err = s.service.Pay(s.ctx, ticket.ID, "card")
	s.Require().NoError(err)

	_, err = s.service.Expire(s.ctx, ticket.ID)
	s.ErrorIs(err, domain.ErrInvalidTransition)

	stored, err := s.service.Get(s.ctx, ticket.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusPaid, stored.Status)
	s.assertSeatConsistent("u-1")
}
