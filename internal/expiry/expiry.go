package expiry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/railtickets/internal/config"
	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/GlebRadaev/railtickets/internal/metrics"
	"github.com/GlebRadaev/railtickets/internal/service/ticketservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=expiry.go -destination=mock_expiry.go -package=expiry

const workers = 4

type Repo interface {
	TicketsByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error)
}

// Expirer cancels a ticket only if it is still BOOKED.
type Expirer interface {
	Expire(ctx context.Context, ticketID string) (*ticketservice.CancelResult, error)
}

// Sweeper cancels BOOKED tickets left unpaid longer than the booking TTL,
// returning their seats to sale through the lifecycle controller.
type Sweeper struct {
	repo       Repo
	expirer    Expirer
	ttl        time.Duration
	interval   time.Duration
	workerPool WorkerPoolI
	inFlight   sync.Map
	now        func() time.Time
}

func New(cfg *config.Config, repo Repo, expirer Expirer) *Sweeper {
	return &Sweeper{
		repo:       repo,
		expirer:    expirer,
		ttl:        cfg.BookingTTL,
		interval:   cfg.SweepInterval,
		workerPool: NewWorkerPool(workers),
		now:        time.Now,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	zap.L().Info("Booking expiry started", zap.Duration("ttl", s.ttl), zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping booking expiry")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep expires every overdue booking and waits for the cancellations. It
// returns how many tickets were canceled.
func (s *Sweeper) sweep(ctx context.Context) int {
	tickets, err := s.repo.TicketsByStatus(ctx, domain.StatusBooked)
	if err != nil {
		zap.L().Error("Failed to fetch bookings for expiry", zap.Error(err))
		return 0
	}

	deadline := s.now().Add(-s.ttl)
	var (
		g       errgroup.Group
		wg      sync.WaitGroup
		expired atomic.Int32
	)
	for _, ticket := range tickets {
		if ticket.BookedAt.After(deadline) {
			continue
		}
		if _, loaded := s.inFlight.LoadOrStore(ticket.ID, struct{}{}); loaded {
			continue
		}

		ticket := ticket
		g.Go(func() error {
			wg.Add(1)
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				defer s.inFlight.Delete(ticket.ID)
				ok, err := s.expire(ctx, ticket)
				if ok {
					expired.Add(1)
				}
				return err
			})
			if err != nil {
				wg.Done()
				s.inFlight.Delete(ticket.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling booking expiry", zap.Error(err))
	}
	wg.Wait()
	return int(expired.Load())
}

func (s *Sweeper) expire(ctx context.Context, ticket domain.Ticket) (bool, error) {
	_, err := s.expirer.Expire(ctx, ticket.ID)
	if errors.Is(err, domain.ErrInvalidTransition) {
		zap.L().Info("Booking changed before expiry", zap.String("ticket_id", ticket.ID))
		return false, nil
	}
	if err != nil {
		return false, err
	}
	metrics.TicketEvents.WithLabelValues(metrics.EventExpired).Inc()
	zap.L().Info("Unpaid booking expired", zap.String("ticket_id", ticket.ID), zap.Time("booked_at", ticket.BookedAt))
	return true, nil
}
