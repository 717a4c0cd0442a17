package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/GlebRadaev/railtickets/internal/dto"
	"github.com/GlebRadaev/railtickets/internal/handlers/httperr"
	"github.com/GlebRadaev/railtickets/internal/service/ticketservice"
	"github.com/GlebRadaev/railtickets/pkg/auth"
	"github.com/GlebRadaev/railtickets/pkg/utils"
	"github.com/GlebRadaev/railtickets/pkg/validate"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=tickets.go -destination=mock_tickets.go -package=tickets

const (
	MethodCard   = "card"
	MethodWallet = "wallet"
)

type Service interface {
	Book(ctx context.Context, userID, routeID, seatID string) (*domain.Ticket, error)
	Pay(ctx context.Context, ticketID, paymentMethod string) (*domain.Transaction, error)
	Cancel(ctx context.Context, ticketID string) (*ticketservice.CancelResult, error)
	Get(ctx context.Context, ticketID string) (*domain.Ticket, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Ticket, error)
}

type Routes interface {
	Details(ctx context.Context, routeID string) (domain.RouteSummary, error)
}

type TicketHandler struct {
	ticketService Service
	routes        Routes
}

func New(ticketService Service, routes Routes) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
		routes:        routes,
	}
}

// Book godoc
//
//	@Summary		Book a seat
//	@Description	Reserve a free seat on a route. The price is frozen at booking time.
//	@Tags			Tickets
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BookRequestDTO	true	"Route and seat"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.TicketResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or seat outside the route's train"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Route or seat not found"
//	@Failure		409	{object}	utils.Response	"Seat is not available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tickets [post]
func (h *TicketHandler) Book(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.BookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RouteID == "" || req.SeatID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ticket, err := h.ticketService.Book(r.Context(), userID, req.RouteID, req.SeatID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTicketResponse(ticket))
}

// List godoc
//
//	@Summary		List my tickets
//	@Description	Tickets of the authorized user in booking order, each with its route details
//	@Tags			Tickets
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TicketResponseDTO
//	@Success		204	"No tickets yet"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tickets [get]
func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	tickets, err := h.ticketService.ListForUser(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(tickets) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	routes := make(map[string]*dto.RouteResponseDTO)
	response := make([]dto.TicketResponseDTO, 0, len(tickets))
	for i := range tickets {
		item := dto.NewTicketResponse(&tickets[i])
		route, seen := routes[item.RouteID]
		if !seen {
			summary, err := h.routes.Details(r.Context(), item.RouteID)
			if err != nil {
				httperr.Respond(w, err)
				return
			}
			if summary.ID != "" {
				resp := dto.NewRouteResponse(summary)
				route = &resp
			}
			routes[item.RouteID] = route
		}
		item.Route = route
		response = append(response, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// owned loads the ticket from the path and checks it belongs to the caller.
// Tickets of other users are reported as missing.
func (h *TicketHandler) owned(w http.ResponseWriter, r *http.Request) (*domain.Ticket, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	ticketID := chi.URLParam(r, "id")
	ticket, err := h.ticketService.Get(r.Context(), ticketID)
	if err == nil && ticket.UserID != userID {
		zap.L().Info("ticket of another user requested", zap.String("ticket_id", ticketID), zap.String("user_id", userID))
		err = domain.ErrNotFound
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Ticket not found")
			return nil, false
		}
		httperr.Respond(w, err)
		return nil, false
	}
	return ticket, true
}

// Pay godoc
//
//	@Summary		Pay for a ticket
//	@Description	Simulated payment of a BOOKED ticket by card (Luhn-checked number) or wallet
//	@Tags			Tickets
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"Ticket id"
//	@Param			request	body	dto.PayRequestDTO	true	"Payment method"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or unknown method"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Ticket not found"
//	@Failure		409	{object}	utils.Response	"Ticket is not in BOOKED status"
//	@Failure		422	{object}	utils.Response	"Invalid card number"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tickets/{id}/pay [post]
func (h *TicketHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req dto.PayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	method := strings.ToLower(strings.TrimSpace(req.Method))
	switch method {
	case MethodCard:
		if !validate.IsCardNumber(req.CardNumber) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
			return
		}
	case MethodWallet:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Payment method must be card or wallet")
		return
	}

	ticket, ok := h.owned(w, r)
	if !ok {
		return
	}
	tx, err := h.ticketService.Pay(r.Context(), ticket.ID, method)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

// Cancel godoc
//
//	@Summary		Cancel a ticket
//	@Description	Cancel a BOOKED or PAID ticket and return the seat to sale. refund_due is set for paid tickets.
//	@Tags			Tickets
//	@Produce		json
//	@Param			id	path	string	true	"Ticket id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CancelResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Ticket not found"
//	@Failure		409	{object}	utils.Response	"Ticket already canceled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tickets/{id}/cancel [post]
func (h *TicketHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	ticket, ok := h.owned(w, r)
	if !ok {
		return
	}
	result, err := h.ticketService.Cancel(r.Context(), ticket.ID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CancelResponseDTO{
		Ticket:    dto.NewTicketResponse(result.Ticket),
		RefundDue: result.RefundDue,
	})
}
