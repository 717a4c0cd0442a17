package routeservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=routeservice.go -destination=mock_routeservice.go -package=routeservice

type Repo interface {
	SearchRoutes(ctx context.Context, departureCity, arrivalCity string, date time.Time) ([]domain.RouteSummary, error)
	RouteSummary(ctx context.Context, routeID string) (*domain.RouteSummary, error)
}

type Inventory interface {
	CountAvailable(ctx context.Context, routeID string) (int, error)
}

type Cache interface {
	Get(ctx context.Context, routeID string) (*domain.RouteSummary, bool)
	Set(ctx context.Context, summary *domain.RouteSummary)
}

const countWorkers = 8

var dateLayouts = []string{"2006-01-02", "02.01.2006"}

type Service struct {
	repo      Repo
	inventory Inventory
	cache     Cache
}

// New builds the query service. cache may be nil.
func New(repo Repo, inventory Inventory, cache Cache) *Service {
	return &Service{
		repo:      repo,
		inventory: inventory,
		cache:     cache,
	}
}

// ParseDate accepts ISO dates and the dd.mm.yyyy form.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparsable date %q", domain.ErrValidation, s)
}

// Search returns routes departing on the given date between cities whose
// names contain the queries, each with a live available seat count.
func (s *Service) Search(ctx context.Context, departureCity, arrivalCity string, date time.Time) ([]domain.RouteSummary, error) {
	routes, err := s.repo.SearchRoutes(ctx, departureCity, arrivalCity, date)
	if err != nil {
		zap.L().Error("failed to search routes", zap.Error(err))
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(countWorkers)
	for i := range routes {
		i := i
		g.Go(func() error {
			count, err := s.inventory.CountAvailable(gctx, routes[i].ID)
			if err != nil {
				return err
			}
			routes[i].AvailableSeats = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	zap.L().Debug("routes found",
		zap.String("from", departureCity), zap.String("to", arrivalCity), zap.Int("count", len(routes)))
	return routes, nil
}

// Details returns the joined summary of one route. An unknown route yields a
// zero summary and no error; storage faults are still reported.
func (s *Service) Details(ctx context.Context, routeID string) (domain.RouteSummary, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, routeID); ok {
			return *cached, nil
		}
	}

	summary, err := s.repo.RouteSummary(ctx, routeID)
	if errors.Is(err, domain.ErrNotFound) {
		zap.L().Info("route not found", zap.String("route_id", routeID))
		return domain.RouteSummary{}, nil
	}
	if err != nil {
		zap.L().Error("failed to get route summary", zap.String("route_id", routeID), zap.Error(err))
		return domain.RouteSummary{}, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, summary)
	}
	return *summary, nil
}
