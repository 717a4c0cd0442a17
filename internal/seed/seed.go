package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Repo interface {
	CreateStation(ctx context.Context, station *domain.Station) error
	GetStation(ctx context.Context, id string) (*domain.Station, error)
	UpdateStation(ctx context.Context, station *domain.Station) error
	CreateTrain(ctx context.Context, train *domain.Train) error
	GetTrain(ctx context.Context, id string) (*domain.Train, error)
	UpdateTrain(ctx context.Context, train *domain.Train) error
	CreateRoute(ctx context.Context, route *domain.Route) error
	GetRoute(ctx context.Context, id string) (*domain.Route, error)
	CreateWagon(ctx context.Context, wagon *domain.Wagon) error
	GetWagon(ctx context.Context, id string) (*domain.Wagon, error)
	UpdateWagon(ctx context.Context, wagon *domain.Wagon) error
	CreateSeat(ctx context.Context, seat *domain.Seat) error
	GetSeat(ctx context.Context, id string) (*domain.Seat, error)
	UpdateSeat(ctx context.Context, seat *domain.Seat) error
}

// Data is the reference data file: stations, trains with their wagons and
// seats, and the scheduled routes.
type Data struct {
	Stations []Station `yaml:"stations"`
	Trains   []Train   `yaml:"trains"`
	Routes   []Route   `yaml:"routes"`
}

type Station struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	City    string `yaml:"city"`
	Address string `yaml:"address"`
}

type Train struct {
	ID     string  `yaml:"id"`
	Number string  `yaml:"number"`
	Type   string  `yaml:"type"`
	Wagons []Wagon `yaml:"wagons"`
}

type Wagon struct {
	ID     string `yaml:"id"`
	Number int    `yaml:"number"`
	Type   string `yaml:"type"`
	Seats  []Seat `yaml:"seats"`
}

type Seat struct {
	ID              string  `yaml:"id"`
	Number          int     `yaml:"number"`
	PriceMultiplier float64 `yaml:"price_multiplier"`
}

type Route struct {
	ID            string    `yaml:"id"`
	From          string    `yaml:"from"`
	To            string    `yaml:"to"`
	Train         string    `yaml:"train"`
	DepartureTime time.Time `yaml:"departure_time"`
	ArrivalTime   time.Time `yaml:"arrival_time"`
	BasePrice     float64   `yaml:"base_price"`
}

type Stats struct {
	Created int
	Updated int
}

func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a seed document. Unknown keys are rejected and every entity
// must carry an explicit id so that reloading the file is idempotent.
func Parse(r io.Reader) (*Data, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data Data
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode seed: %w", domain.ErrValidation, err)
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *Data) validate() error {
	missing := func(kind string, i int) error {
		return fmt.Errorf("%w: %s #%d has no id", domain.ErrValidation, kind, i+1)
	}
	for i, st := range d.Stations {
		if st.ID == "" {
			return missing("station", i)
		}
	}
	for i, tr := range d.Trains {
		if tr.ID == "" {
			return missing("train", i)
		}
		for j, w := range tr.Wagons {
			if w.ID == "" {
				return missing("wagon of train "+tr.ID, j)
			}
			for k, s := range w.Seats {
				if s.ID == "" {
					return missing("seat of wagon "+w.ID, k)
				}
			}
		}
	}
	for i, r := range d.Routes {
		if r.ID == "" {
			return missing("route", i)
		}
		if !r.ArrivalTime.After(r.DepartureTime) {
			return fmt.Errorf("%w: route %s arrives before it departs", domain.ErrValidation, r.ID)
		}
	}
	return nil
}

// Apply writes the reference data through repo. Existing stations, trains,
// wagons and seats are updated in place; a seat keeps its availability flag
// so reseeding never frees an occupied seat. Routes are immutable and only
// created when absent.
func Apply(ctx context.Context, repo Repo, data *Data) (Stats, error) {
	var stats Stats

	for _, st := range data.Stations {
		station := domain.Station{ID: st.ID, Name: st.Name, City: st.City, Address: st.Address}
		err := upsert(&stats,
			func() error { _, err := repo.GetStation(ctx, st.ID); return err },
			func() error { return repo.CreateStation(ctx, &station) },
			func() error { return repo.UpdateStation(ctx, &station) })
		if err != nil {
			return stats, fmt.Errorf("seed station %s: %w", st.ID, err)
		}
	}

	for _, tr := range data.Trains {
		train := domain.Train{ID: tr.ID, Number: tr.Number, Type: tr.Type, WagonCount: len(tr.Wagons)}
		err := upsert(&stats,
			func() error { _, err := repo.GetTrain(ctx, tr.ID); return err },
			func() error { return repo.CreateTrain(ctx, &train) },
			func() error { return repo.UpdateTrain(ctx, &train) })
		if err != nil {
			return stats, fmt.Errorf("seed train %s: %w", tr.ID, err)
		}
		for _, w := range tr.Wagons {
			if err := applyWagon(ctx, repo, &stats, tr.ID, w); err != nil {
				return stats, err
			}
		}
	}

	for _, r := range data.Routes {
		_, err := repo.GetRoute(ctx, r.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return stats, fmt.Errorf("seed route %s: %w", r.ID, err)
		}
		route := domain.Route{
			ID:                 r.ID,
			DepartureStationID: r.From,
			ArrivalStationID:   r.To,
			TrainID:            r.Train,
			DepartureTime:      r.DepartureTime.UTC(),
			ArrivalTime:        r.ArrivalTime.UTC(),
			BasePrice:          r.BasePrice,
		}
		if err := repo.CreateRoute(ctx, &route); err != nil {
			return stats, fmt.Errorf("seed route %s: %w", r.ID, err)
		}
		stats.Created++
	}

	zap.L().Info("reference data loaded", zap.Int("created", stats.Created), zap.Int("updated", stats.Updated))
	return stats, nil
}

func applyWagon(ctx context.Context, repo Repo, stats *Stats, trainID string, w Wagon) error {
	wagon := domain.Wagon{ID: w.ID, TrainID: trainID, Number: w.Number, Type: w.Type, SeatCount: len(w.Seats)}
	err := upsert(stats,
		func() error { _, err := repo.GetWagon(ctx, w.ID); return err },
		func() error { return repo.CreateWagon(ctx, &wagon) },
		func() error { return repo.UpdateWagon(ctx, &wagon) })
	if err != nil {
		return fmt.Errorf("seed wagon %s: %w", w.ID, err)
	}

	for _, s := range w.Seats {
		seat := domain.Seat{ID: s.ID, WagonID: w.ID, Number: s.Number, Available: true, PriceMultiplier: s.PriceMultiplier}
		existing, err := repo.GetSeat(ctx, s.ID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			err = repo.CreateSeat(ctx, &seat)
			stats.Created++
		case err == nil:
			seat.Available = existing.Available
			err = repo.UpdateSeat(ctx, &seat)
			stats.Updated++
		}
		if err != nil {
			return fmt.Errorf("seed seat %s: %w", s.ID, err)
		}
	}
	return nil
}

func upsert(stats *Stats, get, create, update func() error) error {
	err := get()
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := create(); err != nil {
			return err
		}
		stats.Created++
		return nil
	case err != nil:
		return err
	}
	if err := update(); err != nil {
		return err
	}
	stats.Updated++
	return nil
}
