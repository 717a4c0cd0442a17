package routes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/GlebRadaev/railtickets/internal/dto"
	"github.com/GlebRadaev/railtickets/internal/handlers/httperr"
	"github.com/GlebRadaev/railtickets/internal/service/routeservice"
	"github.com/GlebRadaev/railtickets/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=routes.go -destination=mock_routes.go -package=routes

type Service interface {
	Search(ctx context.Context, departureCity, arrivalCity string, date time.Time) ([]domain.RouteSummary, error)
	Details(ctx context.Context, routeID string) (domain.RouteSummary, error)
}

type Inventory interface {
	ListAvailable(ctx context.Context, routeID string) ([]domain.Seat, error)
}

type RouteHandler struct {
	routeService Service
	inventory    Inventory
}

func New(routeService Service, inventory Inventory) *RouteHandler {
	return &RouteHandler{
		routeService: routeService,
		inventory:    inventory,
	}
}

// Search godoc
//
//	@Summary		Search routes
//	@Description	Routes departing on the given date whose station cities contain the queries, case-insensitive
//	@Tags			Routes
//	@Produce		json
//	@Param			from	query		string	true	"Departure city"
//	@Param			to		query		string	true	"Arrival city"
//	@Param			date	query		string	true	"Departure date, 2006-01-02 or 02.01.2006"
//	@Success		200		{array}		dto.RouteResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing or malformed query"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/routes [get]
func (h *RouteHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Query parameters from and to are required")
		return
	}
	date, err := routeservice.ParseDate(q.Get("date"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	found, err := h.routeService.Search(r.Context(), from, to, date)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.RouteResponseDTO, 0, len(found))
	for _, s := range found {
		response = append(response, dto.NewRouteResponse(s))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Details godoc
//
//	@Summary		Route details
//	@Tags			Routes
//	@Produce		json
//	@Param			id	path		string	true	"Route id"
//	@Success		200	{object}	dto.RouteResponseDTO
//	@Failure		404	{object}	utils.Response	"Route not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/routes/{id} [get]
func (h *RouteHandler) Details(w http.ResponseWriter, r *http.Request) {
	summary, err := h.routeService.Details(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if summary.ID == "" {
		utils.RespondWithError(w, http.StatusNotFound, "Route not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRouteResponse(summary))
}

// Seats godoc
//
//	@Summary		Available seats of a route
//	@Description	Free seats ordered by wagon number, then seat number
//	@Tags			Routes
//	@Produce		json
//	@Param			id	path		string	true	"Route id"
//	@Success		200	{array}		dto.SeatResponseDTO
//	@Failure		404	{object}	utils.Response	"Route not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/routes/{id}/seats [get]
func (h *RouteHandler) Seats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.inventory.ListAvailable(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.SeatResponseDTO, 0, len(seats))
	for _, s := range seats {
		response = append(response, dto.SeatResponseDTO{
			ID:              s.ID,
			WagonID:         s.WagonID,
			Number:          s.Number,
			PriceMultiplier: s.PriceMultiplier,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
