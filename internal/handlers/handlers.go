package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/railtickets/docs"
	routehandlers "github.com/GlebRadaev/railtickets/internal/handlers/routes"
	tickethandlers "github.com/GlebRadaev/railtickets/internal/handlers/tickets"
	userhandlers "github.com/GlebRadaev/railtickets/internal/handlers/users"
	"github.com/GlebRadaev/railtickets/internal/service"
	"github.com/GlebRadaev/railtickets/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type RouteHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	Seats(w http.ResponseWriter, r *http.Request)
}

type TicketHandler interface {
	Book(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler   UserHandler
	RouteHandler  RouteHandler
	TicketHandler TicketHandler
	jwtService    auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		UserHandler:   userhandlers.New(s.UserService),
		RouteHandler:  routehandlers.New(s.RouteService, s.InventoryService),
		TicketHandler: tickethandlers.New(s.TicketService, s.RouteService),
		jwtService:    s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", h.UserHandler.Register)
			r.Post("/login", h.UserHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(h.jwtService))
				r.Get("/me", h.UserHandler.Profile)
				r.Put("/me", h.UserHandler.UpdateProfile)
			})
		})

		r.Route("/routes", func(r chi.Router) {
			r.Get("/", h.RouteHandler.Search)
			r.Get("/{id}", h.RouteHandler.Details)
			r.Get("/{id}/seats", h.RouteHandler.Seats)
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Post("/", h.TicketHandler.Book)
			r.Get("/", h.TicketHandler.List)
			r.Post("/{id}/pay", h.TicketHandler.Pay)
			r.Post("/{id}/cancel", h.TicketHandler.Cancel)
		})
	})

	return r
}
