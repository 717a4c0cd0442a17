package pgrepo

import (
	"context"
	"strings"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/jackc/pgx/v5"
)

const routeSummarySelect = `
	SELECT r.id, ds.name, ds.city, ars.name, ars.city, t.number,
		r.departure_time, r.arrival_time, r.base_price
	FROM routes r
	JOIN stations ds ON r.departure_station_id = ds.id
	JOIN stations ars ON r.arrival_station_id = ars.id
	JOIN trains t ON r.train_id = t.id
`

const (
	searchRoutesQuery = routeSummarySelect + `
	WHERE strpos(ds.city_key, $1) > 0
		AND strpos(ars.city_key, $2) > 0
		AND r.departure_time::date = $3::date
	ORDER BY r.departure_time, r.id
`
	routeSummaryQuery = routeSummarySelect + `
	WHERE r.id = $1
`
	availableSeatsQuery = `
		SELECT s.id, s.wagon_id, s.number, s.available, s.price_multiplier
		FROM seats s
		JOIN wagons w ON s.wagon_id = w.id
		JOIN routes r ON r.train_id = w.train_id
		WHERE r.id = $1 AND s.available
		ORDER BY w.number, s.number
	`
	countAvailableSeatsQuery = `
		SELECT COUNT(*)
		FROM seats s
		JOIN wagons w ON s.wagon_id = w.id
		JOIN routes r ON r.train_id = w.train_id
		WHERE r.id = $1 AND s.available
	`
)

// foldCity lowercases in Go rather than in SQL; lower() in the database
// follows LC_CTYPE and leaves Cyrillic untouched on a C-locale cluster.
func foldCity(city string) string {
	return strings.ToLower(city)
}

func scanSummary(row pgx.Row) (*domain.RouteSummary, error) {
	var s domain.RouteSummary
	err := row.Scan(
		&s.ID, &s.DepartureStation, &s.DepartureCity, &s.ArrivalStation, &s.ArrivalCity, &s.TrainNumber,
		&s.DepartureTime, &s.ArrivalTime, &s.Price,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SearchRoutes matches station cities by case-insensitive substring and the
// departure by calendar date. Available seat counts are left to the caller.
func (r *Repository) SearchRoutes(ctx context.Context, departureCity, arrivalCity string, date time.Time) ([]domain.RouteSummary, error) {
	day := date.UTC().Truncate(24 * time.Hour)
	rows, err := r.db.Query(ctx, searchRoutesQuery, foldCity(departureCity), foldCity(arrivalCity), day)
	if err != nil {
		return nil, storageErr("search routes", err)
	}
	defer rows.Close()

	routes := make([]domain.RouteSummary, 0)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, storageErr("scan route row", err)
		}
		routes = append(routes, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("search routes", err)
	}
	return routes, nil
}

func (r *Repository) RouteSummary(ctx context.Context, routeID string) (*domain.RouteSummary, error) {
	s, err := scanSummary(r.db.QueryRow(ctx, routeSummaryQuery, routeID))
	if err != nil {
		return nil, rowErr("route summary", "route", routeID, err)
	}
	return s, nil
}

func (r *Repository) AvailableSeats(ctx context.Context, routeID string) ([]domain.Seat, error) {
	rows, err := r.db.Query(ctx, availableSeatsQuery, routeID)
	if err != nil {
		return nil, storageErr("available seats", err)
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)
	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.ID, &s.WagonID, &s.Number, &s.Available, &s.PriceMultiplier); err != nil {
			return nil, storageErr("scan seat row", err)
		}
		seats = append(seats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("available seats", err)
	}
	return seats, nil
}

func (r *Repository) CountAvailableSeats(ctx context.Context, routeID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countAvailableSeatsQuery, routeID).Scan(&count); err != nil {
		return 0, storageErr("count available seats", err)
	}
	return count, nil
}
