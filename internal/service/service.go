package service

import (
	"github.com/GlebRadaev/railtickets/internal/config"
	"github.com/GlebRadaev/railtickets/internal/expiry"
	"github.com/GlebRadaev/railtickets/internal/handlers/routes"
	"github.com/GlebRadaev/railtickets/internal/handlers/tickets"
	"github.com/GlebRadaev/railtickets/internal/handlers/users"
	"github.com/GlebRadaev/railtickets/internal/repo"
	"github.com/GlebRadaev/railtickets/internal/service/inventoryservice"
	"github.com/GlebRadaev/railtickets/internal/service/routeservice"
	"github.com/GlebRadaev/railtickets/internal/service/ticketservice"
	"github.com/GlebRadaev/railtickets/internal/service/userservice"

	pkgauth "github.com/GlebRadaev/railtickets/pkg/auth"
)

type Services struct {
	UserService      users.Service
	RouteService     routes.Service
	InventoryService routes.Inventory
	TicketService    tickets.Service
	ExpiryService    expiry.Expirer
	JWTService       pkgauth.JWTServiceInterface
}

// New wires the services over one storage provider. cache may be nil to
// disable route summary caching.
func New(repo *repo.Repositories, cfg *config.Config, cache routeservice.Cache) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	inventoryService := inventoryservice.New(repo.InventoryRepo)
	ticketService := ticketservice.New(repo.TicketRepo, inventoryService)
	routeService := routeservice.New(repo.RouteRepo, inventoryService, cache)
	userService := userservice.New(repo.UserRepo, pkgauth.NewHashService(0), jwtService)

	return &Services{
		UserService:      userService,
		RouteService:     routeService,
		InventoryService: inventoryService,
		TicketService:    ticketService,
		ExpiryService:    ticketService,
		JWTService:       jwtService,
	}
}
