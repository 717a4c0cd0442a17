package routeservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo      *MockRepo
	inventory *MockInventory
	cache     *MockCache
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:      NewMockRepo(ctrl),
		inventory: NewMockInventory(ctrl),
		cache:     NewMockCache(ctrl),
	}
	return New(m.repo, m.inventory, m.cache), m
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      time.Time
		expectedError error
	}{
		{name: "ISO date", input: "2024-05-01", expected: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Dotted date", input: "01.05.2024", expected: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Surrounding spaces", input: " 2024-05-01 ", expected: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Garbage", input: "tomorrow", expectedError: domain.ErrValidation},
		{name: "Impossible day", input: "2024-02-30", expectedError: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	service, m := NewMock(t)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.RouteSummary
		expectedError error
	}{
		{
			name: "Routes annotated with seat counts",
			prepareMock: func() {
				m.repo.EXPECT().SearchRoutes(gomock.Any(), "Moscow", "Kazan", day).
					Return([]domain.RouteSummary{{ID: "r-1"}, {ID: "r-2"}}, nil)
				m.inventory.EXPECT().CountAvailable(gomock.Any(), "r-1").Return(3, nil)
				m.inventory.EXPECT().CountAvailable(gomock.Any(), "r-2").Return(0, nil)
			},
			expected: []domain.RouteSummary{{ID: "r-1", AvailableSeats: 3}, {ID: "r-2", AvailableSeats: 0}},
		},
		{
			name: "Empty result is not an error",
			prepareMock: func() {
				m.repo.EXPECT().SearchRoutes(gomock.Any(), "Moscow", "Kazan", day).
					Return([]domain.RouteSummary{}, nil)
			},
			expected: []domain.RouteSummary{},
		},
		{
			name: "Count fails",
			prepareMock: func() {
				m.repo.EXPECT().SearchRoutes(gomock.Any(), "Moscow", "Kazan", day).
					Return([]domain.RouteSummary{{ID: "r-1"}}, nil)
				m.inventory.EXPECT().CountAvailable(gomock.Any(), "r-1").Return(0, domain.ErrStorage)
			},
			expectedError: domain.ErrStorage,
		},
		{
			name: "Search fails",
			prepareMock: func() {
				m.repo.EXPECT().SearchRoutes(gomock.Any(), "Moscow", "Kazan", day).
					Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Search(context.Background(), "Moscow", "Kazan", day)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestDetails(t *testing.T) {
	service, m := NewMock(t)
	summary := &domain.RouteSummary{ID: "r-1", DepartureCity: "Moscow", ArrivalCity: "Kazan", TrainNumber: "002G"}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      domain.RouteSummary
		expectedError error
	}{
		{
			name: "Served from cache",
			prepareMock: func() {
				m.cache.EXPECT().Get(gomock.Any(), "r-1").Return(summary, true)
			},
			expected: *summary,
		},
		{
			name: "Loaded and cached",
			prepareMock: func() {
				m.cache.EXPECT().Get(gomock.Any(), "r-1").Return(nil, false)
				m.repo.EXPECT().RouteSummary(gomock.Any(), "r-1").Return(summary, nil)
				m.cache.EXPECT().Set(gomock.Any(), summary)
			},
			expected: *summary,
		},
		{
			name: "Unknown route gives zero summary",
			prepareMock: func() {
				m.cache.EXPECT().Get(gomock.Any(), "r-1").Return(nil, false)
				m.repo.EXPECT().RouteSummary(gomock.Any(), "r-1").Return(nil, domain.ErrNotFound)
			},
			expected: domain.RouteSummary{},
		},
		{
			name: "Storage failure is reported",
			prepareMock: func() {
				m.cache.EXPECT().Get(gomock.Any(), "r-1").Return(nil, false)
				m.repo.EXPECT().RouteSummary(gomock.Any(), "r-1").Return(nil, domain.ErrStorage)
			},
			expectedError: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Details(context.Background(), "r-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetails_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, NewMockInventory(ctrl), nil)

	repo.EXPECT().RouteSummary(gomock.Any(), "r-1").Return(&domain.RouteSummary{ID: "r-1"}, nil)

	result, err := service.Details(context.Background(), "r-1")
	assert.NoError(t, err)
	assert.Equal(t, "r-1", result.ID)
}
