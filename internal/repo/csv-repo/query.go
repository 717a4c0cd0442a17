package csvrepo

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
)

// summarize joins a route with its stations and train. ok is false when any
// referenced row is missing, matching an inner join.
func summarize(route *domain.Route, stations []domain.Station, trains []domain.Train) (domain.RouteSummary, bool) {
	var (
		dep, arr *domain.Station
		train    *domain.Train
	)
	for i := range stations {
		if stations[i].ID == route.DepartureStationID {
			dep = &stations[i]
		}
		if stations[i].ID == route.ArrivalStationID {
			arr = &stations[i]
		}
	}
	for i := range trains {
		if trains[i].ID == route.TrainID {
			train = &trains[i]
			break
		}
	}
	if dep == nil || arr == nil || train == nil {
		return domain.RouteSummary{}, false
	}
	return domain.RouteSummary{
		ID:               route.ID,
		DepartureStation: dep.Name,
		DepartureCity:    dep.City,
		ArrivalStation:   arr.Name,
		ArrivalCity:      arr.City,
		TrainNumber:      train.Number,
		DepartureTime:    route.DepartureTime,
		ArrivalTime:      route.ArrivalTime,
		Price:            route.BasePrice,
	}, true
}

func (r *Repository) loadRouteJoin(ctx context.Context) ([]domain.Route, []domain.Station, []domain.Train, error) {
	routes, err := load(ctx, r.dir, routesTable)
	if err != nil {
		return nil, nil, nil, err
	}
	stations, err := load(ctx, r.dir, stationsTable)
	if err != nil {
		return nil, nil, nil, err
	}
	trains, err := load(ctx, r.dir, trainsTable)
	if err != nil {
		return nil, nil, nil, err
	}
	return routes, stations, trains, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SearchRoutes matches station cities by case-insensitive substring and the
// departure by calendar date. Available seat counts are left to the caller.
func (r *Repository) SearchRoutes(ctx context.Context, departureCity, arrivalCity string, date time.Time) ([]domain.RouteSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes, stations, trains, err := r.loadRouteJoin(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RouteSummary, 0)
	for i := range routes {
		if !domain.SameDay(routes[i].DepartureTime, date) {
			continue
		}
		s, ok := summarize(&routes[i], stations, trains)
		if !ok {
			continue
		}
		if containsFold(s.DepartureCity, departureCity) && containsFold(s.ArrivalCity, arrivalCity) {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].DepartureTime.Equal(result[j].DepartureTime) {
			return result[i].DepartureTime.Before(result[j].DepartureTime)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *Repository) RouteSummary(ctx context.Context, routeID string) (*domain.RouteSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes, stations, trains, err := r.loadRouteJoin(ctx)
	if err != nil {
		return nil, err
	}
	i, ok := find(routes, routesTable, routeID)
	if !ok {
		return nil, notFound("route", routeID)
	}
	s, ok := summarize(&routes[i], stations, trains)
	if !ok {
		return nil, notFound("route", routeID)
	}
	return &s, nil
}

// availableSeats resolves route -> train -> wagons -> seats and keeps the
// available ones ordered by wagon number, then seat number. An unknown route
// yields no seats.
func (r *Repository) availableSeats(ctx context.Context, routeID string) ([]domain.Seat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes, err := load(ctx, r.dir, routesTable)
	if err != nil {
		return nil, err
	}
	i, ok := find(routes, routesTable, routeID)
	if !ok {
		return []domain.Seat{}, nil
	}
	wagons, err := load(ctx, r.dir, wagonsTable)
	if err != nil {
		return nil, err
	}
	seats, err := load(ctx, r.dir, seatsTable)
	if err != nil {
		return nil, err
	}

	wagonNumber := make(map[string]int)
	for _, w := range wagons {
		if w.TrainID == routes[i].TrainID {
			wagonNumber[w.ID] = w.Number
		}
	}
	result := make([]domain.Seat, 0)
	for _, s := range seats {
		if _, ok := wagonNumber[s.WagonID]; ok && s.Available {
			result = append(result, s)
		}
	}
	sort.SliceStable(result, func(a, b int) bool {
		wa, wb := wagonNumber[result[a].WagonID], wagonNumber[result[b].WagonID]
		if wa != wb {
			return wa < wb
		}
		return result[a].Number < result[b].Number
	})
	return result, nil
}

func (r *Repository) AvailableSeats(ctx context.Context, routeID string) ([]domain.Seat, error) {
	return r.availableSeats(ctx, routeID)
}

func (r *Repository) CountAvailableSeats(ctx context.Context, routeID string) (int, error) {
	seats, err := r.availableSeats(ctx, routeID)
	if err != nil {
		return 0, err
	}
	return len(seats), nil
}

func (r *Repository) TicketsForUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	return r.filterTickets(ctx, func(t *domain.Ticket) bool { return t.UserID == userID })
}

func (r *Repository) TicketsByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	return r.filterTickets(ctx, func(t *domain.Ticket) bool { return t.Status == status })
}

func (r *Repository) filterTickets(ctx context.Context, keep func(*domain.Ticket) bool) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tickets, err := load(ctx, r.dir, ticketsTable)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Ticket, 0)
	for i := range tickets {
		if keep(&tickets[i]) {
			result = append(result, tickets[i])
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].BookedAt.Equal(result[j].BookedAt) {
			return result[i].BookedAt.Before(result[j].BookedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *Repository) TransactionsForTicket(ctx context.Context, ticketID string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txs, err := load(ctx, r.dir, transactionsTable)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Transaction, 0)
	for _, tx := range txs {
		if tx.TicketID == ticketID {
			result = append(result, tx)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}
