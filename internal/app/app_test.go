package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/railtickets/internal/config"
	"github.com/GlebRadaev/railtickets/internal/dto"
	"github.com/GlebRadaev/railtickets/internal/handlers"
	"github.com/GlebRadaev/railtickets/internal/repo"
	"github.com/GlebRadaev/railtickets/internal/service"
)

const seedDocument = `
stations:
  - {id: st-msk, name: Kazansky, city: Moscow, address: Komsomolskaya 2}
  - {id: st-kzn, name: Kazan-Passenger, city: Kazan, address: Privokzalnaya 1}
trains:
  - id: tr-1
    number: 002G
    type: express
    wagons:
      - id: w-1
        number: 1
        type: coupe
        seats:
          - {id: s-11, number: 1, price_multiplier: 1.5}
          - {id: s-12, number: 2, price_multiplier: 1}
routes:
  - id: r-1
    from: st-msk
    to: st-kzn
    train: tr-1
    departure_time: 2024-05-01T21:00:00Z
    arrival_time: 2024-05-02T08:30:00Z
    base_price: 1000
`

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
	s.app.cfg = &config.Config{
		Storage:   config.StorageCSV,
		CSVDir:    s.T().TempDir(),
		JWTSecret: "secret",
	}
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	closed := false
	s.app.closers = append(s.app.closers, func() { closed = true })
	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
	s.True(closed)
}

func (s *ApplicationSuite) TestOpenCache_Disabled() {
	cache, err := s.app.openCache(context.Background())
	s.NoError(err)
	s.Nil(cache)
}

func (s *ApplicationSuite) TestOpenStorage_UnknownBackend() {
	s.app.cfg.Storage = "mongo"
	_, err := s.app.openStorage(context.Background())
	s.Error(err)
}

func (s *ApplicationSuite) TestLoadSeed_MissingFile() {
	provider, err := s.app.openStorage(context.Background())
	s.Require().NoError(err)
	s.Error(loadSeed(context.Background(), filepath.Join(s.T().TempDir(), "none.yaml"), provider))
}

// TestTicketFlow drives the HTTP surface over the csv backend: register,
// search, book, pay and cancel a seat.
func (s *ApplicationSuite) TestTicketFlow() {
	ctx := context.Background()
	provider, err := s.app.openStorage(ctx)
	s.Require().NoError(err)

	seedFile := filepath.Join(s.T().TempDir(), "seed.yaml")
	s.Require().NoError(os.WriteFile(seedFile, []byte(seedDocument), 0o600))
	s.Require().NoError(loadSeed(ctx, seedFile, provider))

	s.app.repo = repo.New(provider)
	s.app.srv = service.New(s.app.repo, s.app.cfg, nil)
	s.app.api = handlers.New(s.app.srv)
	router := chi.NewRouter()
	s.app.api.InitRoutes(router)
	srv := httptest.NewServer(router)
	defer srv.Close()

	call := func(method, path, token string, body any, out any) int {
		var buf bytes.Buffer
		if body != nil {
			s.Require().NoError(json.NewEncoder(&buf).Encode(body))
		}
		req, err := http.NewRequest(method, srv.URL+path, &buf)
		s.Require().NoError(err)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := srv.Client().Do(req)
		s.Require().NoError(err)
		defer resp.Body.Close()
		if out != nil && resp.StatusCode < http.StatusMultipleChoices {
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
		}
		return resp.StatusCode
	}

	var auth dto.AuthResponseDTO
	s.Equal(http.StatusOK, call(http.MethodPost, "/api/users/register", "", dto.RegisterRequestDTO{
		Surname: "Ivanov", Name: "Ivan", Email: "ivan@example.com", Password: "secret",
	}, &auth))
	s.Require().NotEmpty(auth.Token)
	s.Equal(http.StatusConflict, call(http.MethodPost, "/api/users/register", "", dto.RegisterRequestDTO{
		Email: "IVAN@example.com", Password: "other",
	}, nil))

	var found []dto.RouteResponseDTO
	s.Equal(http.StatusOK, call(http.MethodGet, "/api/routes?from=mosc&to=KAZ&date=2024-05-01", "", nil, &found))
	s.Require().Len(found, 1)
	s.Equal(2, found[0].AvailableSeats)

	var ticket dto.TicketResponseDTO
	s.Equal(http.StatusCreated, call(http.MethodPost, "/api/tickets", auth.Token,
		dto.BookRequestDTO{RouteID: "r-1", SeatID: "s-11"}, &ticket))
	s.Equal(1500.0, ticket.Price)
	s.Equal(http.StatusConflict, call(http.MethodPost, "/api/tickets", auth.Token,
		dto.BookRequestDTO{RouteID: "r-1", SeatID: "s-11"}, nil))

	var seats []dto.SeatResponseDTO
	s.Equal(http.StatusOK, call(http.MethodGet, "/api/routes/r-1/seats", "", nil, &seats))
	s.Require().Len(seats, 1)
	s.Equal("s-12", seats[0].ID)

	var tx dto.TransactionResponseDTO
	s.Equal(http.StatusOK, call(http.MethodPost, "/api/tickets/"+ticket.ID+"/pay", auth.Token,
		dto.PayRequestDTO{Method: "card", CardNumber: "4111111111111111"}, &tx))
	s.Equal(1500.0, tx.Amount)
	s.Equal(http.StatusConflict, call(http.MethodPost, "/api/tickets/"+ticket.ID+"/pay", auth.Token,
		dto.PayRequestDTO{Method: "wallet"}, nil))

	var canceled dto.CancelResponseDTO
	s.Equal(http.StatusOK, call(http.MethodPost, "/api/tickets/"+ticket.ID+"/cancel", auth.Token, nil, &canceled))
	s.True(canceled.RefundDue)
	s.Equal("CANCELED", canceled.Ticket.Status)

	var listed []dto.TicketResponseDTO
	s.Equal(http.StatusOK, call(http.MethodGet, "/api/tickets", auth.Token, nil, &listed))
	s.Require().Len(listed, 1)
	s.Require().NotNil(listed[0].Route)
	s.Equal("002G", listed[0].Route.TrainNumber)

	s.Equal(http.StatusOK, call(http.MethodGet, "/api/routes/r-1/seats", "", nil, &seats))
	s.Len(seats, 2)
}
