package repo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/railtickets/internal/config"
	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/GlebRadaev/railtickets/internal/expiry"
	"github.com/GlebRadaev/railtickets/internal/pg"
	csvrepo "github.com/GlebRadaev/railtickets/internal/repo/csv-repo"
	pgrepo "github.com/GlebRadaev/railtickets/internal/repo/pg-repo"
	"github.com/GlebRadaev/railtickets/internal/seed"
	"github.com/GlebRadaev/railtickets/internal/service/inventoryservice"
	"github.com/GlebRadaev/railtickets/internal/service/routeservice"
	"github.com/GlebRadaev/railtickets/internal/service/ticketservice"
	"github.com/GlebRadaev/railtickets/internal/service/userservice"
	"github.com/google/uuid"
)

// Provider is the full storage capability. Both backends implement it and
// the services only ever see the slices they declare.
type Provider interface {
	userservice.Repo
	inventoryservice.Repo
	ticketservice.Repo
	routeservice.Repo
	expiry.Repo
	seed.Repo

	UpdateRoute(ctx context.Context, route *domain.Route) error
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	TransactionsForTicket(ctx context.Context, ticketID string) ([]domain.Transaction, error)
}

var (
	_ Provider = (*pgrepo.Repository)(nil)
	_ Provider = (*csvrepo.Repository)(nil)
)

// NewID is the identifier generator injected into both backends.
func NewID() string {
	return uuid.NewString()
}

type Repositories struct {
	UserRepo      userservice.Repo
	InventoryRepo inventoryservice.Repo
	TicketRepo    ticketservice.Repo
	RouteRepo     routeservice.Repo
	ExpiryRepo    expiry.Repo
	SeedRepo      seed.Repo
}

func New(p Provider) *Repositories {
	return &Repositories{
		UserRepo:      p,
		InventoryRepo: p,
		TicketRepo:    p,
		RouteRepo:     p,
		ExpiryRepo:    p,
		SeedRepo:      p,
	}
}

// Open selects the backend named by cfg.Storage. conn is only used for the
// postgres backend and may be nil otherwise.
func Open(cfg *config.Config, conn pg.Database) (Provider, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		if conn == nil {
			return nil, fmt.Errorf("postgres storage needs a database connection")
		}
		return pgrepo.New(conn, NewID), nil
	case config.StorageCSV:
		return csvrepo.New(cfg.CSVDir, NewID)
	default:
		return nil, fmt.Errorf("unsupported storage %q", cfg.Storage)
	}
}
