package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/GlebRadaev/railtickets/internal/dto"
	"github.com/GlebRadaev/railtickets/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func TestRegister(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"surname":"Ivanov","name":"Ivan","phone":"+79001234567","email":"ivan@example.com","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), domain.User{
					Surname: "Ivanov", Name: "Ivan", Phone: "+79001234567", Email: "ivan@example.com", Password: "secret",
				}).Return(&domain.User{ID: "u-1"}, nil)
				service.EXPECT().GenerateToken("u-1").Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"email":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Email taken",
			body: `{"email":"ivan@example.com","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, domain.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "email already registered",
		},
		{
			name: "Token generation fails",
			body: `{"email":"ivan@example.com","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&domain.User{ID: "u-1"}, nil)
				service.EXPECT().GenerateToken("u-1").Return("", errors.New("some error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
				var body dto.AuthResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "token", body.Token)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"email":"ivan@example.com","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ivan@example.com", "secret").Return(&domain.User{ID: "u-1"}, nil)
				service.EXPECT().GenerateToken("u-1").Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"ivan@example.com","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ivan@example.com", "wrong").Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid request body",
			body:         "not json",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestProfile(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Profile(gomock.Any(), "u-1").
		Return(&domain.User{ID: "u-1", Name: "Ivan", Email: "ivan@example.com", Password: "hashed"}, nil)

	w := httptest.NewRecorder()
	handler.Profile(w, withUser(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), "u-1"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hashed")
	var body dto.ProfileResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, dto.ProfileResponseDTO{ID: "u-1", Name: "Ivan", Email: "ivan@example.com"}, body)

	w = httptest.NewRecorder()
	handler.Profile(w, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile updated",
			body: `{"surname":"Petrov","name":"Petr","phone":"+79000000000"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), "u-1", "Petrov", "Petr", "+79000000000").
					Return(&domain.User{ID: "u-1", Surname: "Petrov"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User vanished",
			body: `{"surname":"Petrov"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), "u-1", "Petrov", "", "").Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         "[",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUser(httptest.NewRequest(http.MethodPut, "/api/users/me", bytes.NewBufferString(tt.body)), "u-1")
			w := httptest.NewRecorder()

			handler.UpdateProfile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
