package csvrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/railtickets/internal/domain"
)

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	r.assignID(&user.ID)
	return insertRow(ctx, r, "user", usersTable, user, func(rows []domain.User) error {
		return checkEmail(rows, user)
	})
}

func (r *Repository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return getRow(ctx, r, "user", usersTable, id)
}

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users, err := load(ctx, r.dir, usersTable)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, notFound("user with email", email)
}

func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) error {
	return modifyRow(ctx, r, "user", usersTable, user.ID, func(rows []domain.User, i int) (bool, error) {
		if err := checkEmail(rows, user); err != nil {
			return false, err
		}
		rows[i] = *user
		return true, nil
	})
}

// checkEmail keeps emails unique across users other than u itself.
func checkEmail(rows []domain.User, u *domain.User) error {
	for i := range rows {
		if rows[i].Email == u.Email && rows[i].ID != u.ID {
			return fmt.Errorf("user with email %s already exists: %w", u.Email, domain.ErrValidation)
		}
	}
	return nil
}

func (r *Repository) CreateStation(ctx context.Context, station *domain.Station) error {
	r.assignID(&station.ID)
	return insertRow(ctx, r, "station", stationsTable, station, nil)
}

func (r *Repository) GetStation(ctx context.Context, id string) (*domain.Station, error) {
	return getRow(ctx, r, "station", stationsTable, id)
}

func (r *Repository) UpdateStation(ctx context.Context, station *domain.Station) error {
	return replaceRow(ctx, r, "station", stationsTable, station)
}

func (r *Repository) CreateTrain(ctx context.Context, train *domain.Train) error {
	r.assignID(&train.ID)
	return insertRow(ctx, r, "train", trainsTable, train, nil)
}

func (r *Repository) GetTrain(ctx context.Context, id string) (*domain.Train, error) {
	return getRow(ctx, r, "train", trainsTable, id)
}

func (r *Repository) UpdateTrain(ctx context.Context, train *domain.Train) error {
	return replaceRow(ctx, r, "train", trainsTable, train)
}

func (r *Repository) CreateRoute(ctx context.Context, route *domain.Route) error {
	r.assignID(&route.ID)
	return insertRow(ctx, r, "route", routesTable, route, nil)
}

func (r *Repository) GetRoute(ctx context.Context, id string) (*domain.Route, error) {
	return getRow(ctx, r, "route", routesTable, id)
}

func (r *Repository) UpdateRoute(ctx context.Context, route *domain.Route) error {
	return replaceRow(ctx, r, "route", routesTable, route)
}

func (r *Repository) CreateWagon(ctx context.Context, wagon *domain.Wagon) error {
	r.assignID(&wagon.ID)
	return insertRow(ctx, r, "wagon", wagonsTable, wagon, func(rows []domain.Wagon) error {
		for i := range rows {
			if rows[i].TrainID == wagon.TrainID && rows[i].Number == wagon.Number {
				return fmt.Errorf("wagon %d of train %s already exists: %w", wagon.Number, wagon.TrainID, domain.ErrValidation)
			}
		}
		return nil
	})
}

func (r *Repository) GetWagon(ctx context.Context, id string) (*domain.Wagon, error) {
	return getRow(ctx, r, "wagon", wagonsTable, id)
}

func (r *Repository) UpdateWagon(ctx context.Context, wagon *domain.Wagon) error {
	return replaceRow(ctx, r, "wagon", wagonsTable, wagon)
}

func (r *Repository) CreateSeat(ctx context.Context, seat *domain.Seat) error {
	r.assignID(&seat.ID)
	return insertRow(ctx, r, "seat", seatsTable, seat, func(rows []domain.Seat) error {
		for i := range rows {
			if rows[i].WagonID == seat.WagonID && rows[i].Number == seat.Number {
				return fmt.Errorf("seat %d of wagon %s already exists: %w", seat.Number, seat.WagonID, domain.ErrValidation)
			}
		}
		return nil
	})
}

func (r *Repository) GetSeat(ctx context.Context, id string) (*domain.Seat, error) {
	return getRow(ctx, r, "seat", seatsTable, id)
}

func (r *Repository) UpdateSeat(ctx context.Context, seat *domain.Seat) error {
	return replaceRow(ctx, r, "seat", seatsTable, seat)
}

// SetSeatAvailability writes the flag unconditionally; writing the current
// value is a successful no-op.
func (r *Repository) SetSeatAvailability(ctx context.Context, seatID string, available bool) error {
	return modifyRow(ctx, r, "seat", seatsTable, seatID, func(rows []domain.Seat, i int) (bool, error) {
		if rows[i].Available == available {
			return false, nil
		}
		rows[i].Available = available
		return true, nil
	})
}

// SwapSeatAvailability writes the flag only if it currently equals expected.
func (r *Repository) SwapSeatAvailability(ctx context.Context, seatID string, expected, available bool) (bool, error) {
	swapped := false
	err := modifyRow(ctx, r, "seat", seatsTable, seatID, func(rows []domain.Seat, i int) (bool, error) {
		if rows[i].Available != expected {
			return false, nil
		}
		swapped = true
		if rows[i].Available == available {
			return false, nil
		}
		rows[i].Available = available
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return swapped, nil
}

func (r *Repository) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	r.assignID(&ticket.ID)
	return insertRow(ctx, r, "ticket", ticketsTable, ticket, nil)
}

func (r *Repository) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	return getRow(ctx, r, "ticket", ticketsTable, id)
}

// UpdateTicket persists the ticket status only, like the relational backend.
func (r *Repository) UpdateTicket(ctx context.Context, ticket *domain.Ticket) error {
	return modifyRow(ctx, r, "ticket", ticketsTable, ticket.ID, func(rows []domain.Ticket, i int) (bool, error) {
		rows[i].Status = ticket.Status
		return true, nil
	})
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	r.assignID(&tx.ID)
	return insertRow(ctx, r, "transaction", transactionsTable, tx, nil)
}

func (r *Repository) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return getRow(ctx, r, "transaction", transactionsTable, id)
}
