package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/GlebRadaev/railtickets/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RouteHandler, *MockService, *MockInventory) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	inventory := NewMockInventory(ctrl)
	return New(service, inventory), service, inventory
}

func withRouteID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSearch(t *testing.T) {
	handler, service, _ := NewMock(t)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	departure := time.Date(2024, 5, 1, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name:  "Routes found",
			query: "?from=mos&to=kaz&date=2024-05-01",
			prepareMock: func() {
				service.EXPECT().Search(gomock.Any(), "mos", "kaz", day).Return([]domain.RouteSummary{
					{ID: "r-1", DepartureCity: "Moscow", ArrivalCity: "Kazan", DepartureTime: departure, AvailableSeats: 3},
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 1,
		},
		{
			name:  "Dotted date and empty result",
			query: "?from=mos&to=kaz&date=01.05.2024",
			prepareMock: func() {
				service.EXPECT().Search(gomock.Any(), "mos", "kaz", day).Return([]domain.RouteSummary{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing city",
			query:        "?from=mos&date=2024-05-01",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Bad date",
			query:        "?from=mos&to=kaz&date=May 1st",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Storage failure",
			query: "?from=mos&to=kaz&date=2024-05-01",
			prepareMock: func() {
				service.EXPECT().Search(gomock.Any(), "mos", "kaz", day).Return(nil, domain.ErrStorage)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/routes", nil)
			r.URL.RawQuery = tt.query[1:]
			w := httptest.NewRecorder()

			handler.Search(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.RouteResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedCount)
				if tt.expectedCount > 0 {
					assert.Equal(t, "2024-05-01T21:00:00Z", body[0].DepartureTime)
					assert.Equal(t, 3, body[0].AvailableSeats)
				}
			}
		})
	}
}

func TestDetails(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Route found",
			prepareMock: func() {
				service.EXPECT().Details(gomock.Any(), "r-1").Return(domain.RouteSummary{ID: "r-1", TrainNumber: "002G"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown route",
			prepareMock: func() {
				service.EXPECT().Details(gomock.Any(), "r-1").Return(domain.RouteSummary{}, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().Details(gomock.Any(), "r-1").Return(domain.RouteSummary{}, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.Details(w, withRouteID(httptest.NewRequest(http.MethodGet, "/api/routes/r-1", nil), "r-1"))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSeats(t *testing.T) {
	handler, _, inventory := NewMock(t)

	inventory.EXPECT().ListAvailable(gomock.Any(), "r-1").Return([]domain.Seat{
		{ID: "s-11", WagonID: "w-1", Number: 1, Available: true, PriceMultiplier: 1.5},
		{ID: "s-21", WagonID: "w-2", Number: 1, Available: true, PriceMultiplier: 1},
	}, nil)
	inventory.EXPECT().ListAvailable(gomock.Any(), "r-x").Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	handler.Seats(w, withRouteID(httptest.NewRequest(http.MethodGet, "/api/routes/r-1/seats", nil), "r-1"))
	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.SeatResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "s-11", body[0].ID)
	assert.Equal(t, 1.5, body[0].PriceMultiplier)

	w = httptest.NewRecorder()
	handler.Seats(w, withRouteID(httptest.NewRequest(http.MethodGet, "/api/routes/r-x/seats", nil), "r-x"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
