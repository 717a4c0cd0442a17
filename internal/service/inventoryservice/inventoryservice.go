package inventoryservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=inventoryservice.go -destination=mock_inventoryservice.go -package=inventoryservice

type Repo interface {
	GetRoute(ctx context.Context, id string) (*domain.Route, error)
	AvailableSeats(ctx context.Context, routeID string) ([]domain.Seat, error)
	CountAvailableSeats(ctx context.Context, routeID string) (int, error)
	SetSeatAvailability(ctx context.Context, seatID string, available bool) error
	SwapSeatAvailability(ctx context.Context, seatID string, expected, available bool) (bool, error)
}

// Service owns the seat availability flag. It never reserves a seat: the
// flag is the only state.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// ListAvailable returns free seats of the route's train ordered by wagon
// number, then seat number.
func (s *Service) ListAvailable(ctx context.Context, routeID string) ([]domain.Seat, error) {
	if _, err := s.repo.GetRoute(ctx, routeID); err != nil {
		return nil, err
	}
	seats, err := s.repo.AvailableSeats(ctx, routeID)
	if err != nil {
		zap.L().Error("failed to list available seats", zap.String("route_id", routeID), zap.Error(err))
		return nil, err
	}
	return seats, nil
}

func (s *Service) CountAvailable(ctx context.Context, routeID string) (int, error) {
	count, err := s.repo.CountAvailableSeats(ctx, routeID)
	if err != nil {
		zap.L().Error("failed to count available seats", zap.String("route_id", routeID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// SetAvailability is idempotent: writing the current value succeeds.
func (s *Service) SetAvailability(ctx context.Context, seatID string, available bool) error {
	if err := s.repo.SetSeatAvailability(ctx, seatID, available); err != nil {
		zap.L().Error("failed to set seat availability",
			zap.String("seat_id", seatID), zap.Bool("available", available), zap.Error(err))
		return err
	}
	zap.L().Debug("seat availability set", zap.String("seat_id", seatID), zap.Bool("available", available))
	return nil
}

// SetAvailabilityIf writes the flag only when it still equals expected and
// fails with domain.ErrSeatConflict otherwise.
func (s *Service) SetAvailabilityIf(ctx context.Context, seatID string, expected, available bool) error {
	swapped, err := s.repo.SwapSeatAvailability(ctx, seatID, expected, available)
	if err != nil {
		zap.L().Error("failed to swap seat availability", zap.String("seat_id", seatID), zap.Error(err))
		return err
	}
	if !swapped {
		zap.L().Info("seat availability changed concurrently", zap.String("seat_id", seatID))
		return fmt.Errorf("seat %s: %w", seatID, domain.ErrSeatConflict)
	}
	return nil
}
