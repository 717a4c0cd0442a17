package inventoryservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	return service, repo
}

func TestListAvailable(t *testing.T) {
	service, repo := NewMock(t)
	seats := []domain.Seat{
		{ID: "s-1", WagonID: "w-1", Number: 1, Available: true, PriceMultiplier: 1},
		{ID: "s-2", WagonID: "w-1", Number: 2, Available: true, PriceMultiplier: 1},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedSeats []domain.Seat
		expectedError error
	}{
		{
			name: "Seats listed",
			prepareMock: func() {
				repo.EXPECT().GetRoute(gomock.Any(), "r-1").Return(&domain.Route{ID: "r-1"}, nil)
				repo.EXPECT().AvailableSeats(gomock.Any(), "r-1").Return(seats, nil)
			},
			expectedSeats: seats,
		},
		{
			name: "Route not found",
			prepareMock: func() {
				repo.EXPECT().GetRoute(gomock.Any(), "r-1").Return(nil, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				repo.EXPECT().GetRoute(gomock.Any(), "r-1").Return(&domain.Route{ID: "r-1"}, nil)
				repo.EXPECT().AvailableSeats(gomock.Any(), "r-1").Return(nil, domain.ErrStorage)
			},
			expectedError: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.ListAvailable(context.Background(), "r-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSeats, result)
			}
		})
	}
}

func TestCountAvailable(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().CountAvailableSeats(gomock.Any(), "r-1").Return(4, nil)
	repo.EXPECT().CountAvailableSeats(gomock.Any(), "r-2").Return(0, errors.New("some error"))

	count, err := service.CountAvailable(context.Background(), "r-1")
	assert.NoError(t, err)
	assert.Equal(t, 4, count)

	count, err = service.CountAvailable(context.Background(), "r-2")
	assert.Error(t, err)
	assert.Zero(t, count)
}

func TestSetAvailability(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().SetSeatAvailability(gomock.Any(), "s-1", false).Return(nil).Times(2)
	repo.EXPECT().SetSeatAvailability(gomock.Any(), "missing", true).Return(domain.ErrNotFound)

	assert.NoError(t, service.SetAvailability(context.Background(), "s-1", false))
	assert.NoError(t, service.SetAvailability(context.Background(), "s-1", false))
	assert.ErrorIs(t, service.SetAvailability(context.Background(), "missing", true), domain.ErrNotFound)
}

func TestSetAvailabilityIf(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Flag matched expected value",
			prepareMock: func() {
				repo.EXPECT().SwapSeatAvailability(gomock.Any(), "s-1", true, false).Return(true, nil)
			},
		},
		{
			name: "Flag changed concurrently",
			prepareMock: func() {
				repo.EXPECT().SwapSeatAvailability(gomock.Any(), "s-1", true, false).Return(false, nil)
			},
			expectedError: domain.ErrSeatConflict,
		},
		{
			name: "Seat not found",
			prepareMock: func() {
				repo.EXPECT().SwapSeatAvailability(gomock.Any(), "s-1", true, false).Return(false, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.SetAvailabilityIf(context.Background(), "s-1", true, false)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
