package pgrepo

import (
	"context"

	"github.com/GlebRadaev/railtickets/internal/domain"
)

const (
	insertStationQuery = "INSERT INTO stations (id, name, city, address, city_key) VALUES ($1, $2, $3, $4, $5)"
	selectStationQuery = "SELECT id, name, city, address FROM stations WHERE id = $1"
	updateStationQuery = "UPDATE stations SET name = $1, city = $2, address = $3, city_key = $4 WHERE id = $5"

	insertTrainQuery = "INSERT INTO trains (id, number, type, wagon_count) VALUES ($1, $2, $3, $4)"
	selectTrainQuery = "SELECT id, number, type, wagon_count FROM trains WHERE id = $1"
	updateTrainQuery = "UPDATE trains SET number = $1, type = $2, wagon_count = $3 WHERE id = $4"

	insertRouteQuery = `
		INSERT INTO routes (id, departure_station_id, arrival_station_id, train_id, departure_time, arrival_time, base_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	selectRouteQuery = `
		SELECT id, departure_station_id, arrival_station_id, train_id, departure_time, arrival_time, base_price
		FROM routes
		WHERE id = $1
	`
	updateRouteQuery = `
		UPDATE routes
		SET departure_station_id = $1, arrival_station_id = $2, train_id = $3,
			departure_time = $4, arrival_time = $5, base_price = $6
		WHERE id = $7
	`

	insertWagonQuery = "INSERT INTO wagons (id, train_id, number, type, seat_count) VALUES ($1, $2, $3, $4, $5)"
	selectWagonQuery = "SELECT id, train_id, number, type, seat_count FROM wagons WHERE id = $1"
	updateWagonQuery = "UPDATE wagons SET train_id = $1, number = $2, type = $3, seat_count = $4 WHERE id = $5"
)

func (r *Repository) CreateStation(ctx context.Context, station *domain.Station) error {
	r.assignID(&station.ID)
	_, err := r.db.Exec(ctx, insertStationQuery, station.ID, station.Name, station.City, station.Address, foldCity(station.City))
	if err != nil {
		return insertErr("create station", "station", station.ID, err)
	}
	return nil
}

func (r *Repository) GetStation(ctx context.Context, id string) (*domain.Station, error) {
	var st domain.Station
	err := r.db.QueryRow(ctx, selectStationQuery, id).Scan(&st.ID, &st.Name, &st.City, &st.Address)
	if err != nil {
		return nil, rowErr("get station", "station", id, err)
	}
	return &st, nil
}

func (r *Repository) UpdateStation(ctx context.Context, station *domain.Station) error {
	tag, err := r.db.Exec(ctx, updateStationQuery, station.Name, station.City, station.Address, foldCity(station.City), station.ID)
	return affectedOne("update station", "station", station.ID, tag, err)
}

func (r *Repository) CreateTrain(ctx context.Context, train *domain.Train) error {
	r.assignID(&train.ID)
	_, err := r.db.Exec(ctx, insertTrainQuery, train.ID, train.Number, train.Type, train.WagonCount)
	if err != nil {
		return insertErr("create train", "train", train.ID, err)
	}
	return nil
}

func (r *Repository) GetTrain(ctx context.Context, id string) (*domain.Train, error) {
	var tr domain.Train
	err := r.db.QueryRow(ctx, selectTrainQuery, id).Scan(&tr.ID, &tr.Number, &tr.Type, &tr.WagonCount)
	if err != nil {
		return nil, rowErr("get train", "train", id, err)
	}
	return &tr, nil
}

func (r *Repository) UpdateTrain(ctx context.Context, train *domain.Train) error {
	tag, err := r.db.Exec(ctx, updateTrainQuery, train.Number, train.Type, train.WagonCount, train.ID)
	return affectedOne("update train", "train", train.ID, tag, err)
}

func (r *Repository) CreateRoute(ctx context.Context, route *domain.Route) error {
	r.assignID(&route.ID)
	_, err := r.db.Exec(ctx, insertRouteQuery,
		route.ID, route.DepartureStationID, route.ArrivalStationID, route.TrainID,
		route.DepartureTime.UTC(), route.ArrivalTime.UTC(), route.BasePrice,
	)
	if err != nil {
		return insertErr("create route", "route", route.ID, err)
	}
	return nil
}

func (r *Repository) GetRoute(ctx context.Context, id string) (*domain.Route, error) {
	var rt domain.Route
	err := r.db.QueryRow(ctx, selectRouteQuery, id).Scan(
		&rt.ID, &rt.DepartureStationID, &rt.ArrivalStationID, &rt.TrainID,
		&rt.DepartureTime, &rt.ArrivalTime, &rt.BasePrice,
	)
	if err != nil {
		return nil, rowErr("get route", "route", id, err)
	}
	return &rt, nil
}

func (r *Repository) UpdateRoute(ctx context.Context, route *domain.Route) error {
	tag, err := r.db.Exec(ctx, updateRouteQuery,
		route.DepartureStationID, route.ArrivalStationID, route.TrainID,
		route.DepartureTime.UTC(), route.ArrivalTime.UTC(), route.BasePrice, route.ID,
	)
	return affectedOne("update route", "route", route.ID, tag, err)
}

func (r *Repository) CreateWagon(ctx context.Context, wagon *domain.Wagon) error {
	r.assignID(&wagon.ID)
	_, err := r.db.Exec(ctx, insertWagonQuery, wagon.ID, wagon.TrainID, wagon.Number, wagon.Type, wagon.SeatCount)
	if err != nil {
		return insertErr("create wagon", "wagon", wagon.ID, err)
	}
	return nil
}

func (r *Repository) GetWagon(ctx context.Context, id string) (*domain.Wagon, error) {
	var w domain.Wagon
	err := r.db.QueryRow(ctx, selectWagonQuery, id).Scan(&w.ID, &w.TrainID, &w.Number, &w.Type, &w.SeatCount)
	if err != nil {
		return nil, rowErr("get wagon", "wagon", id, err)
	}
	return &w, nil
}

func (r *Repository) UpdateWagon(ctx context.Context, wagon *domain.Wagon) error {
	tag, err := r.db.Exec(ctx, updateWagonQuery, wagon.TrainID, wagon.Number, wagon.Type, wagon.SeatCount, wagon.ID)
	return affectedOne("update wagon", "wagon", wagon.ID, tag, err)
}
