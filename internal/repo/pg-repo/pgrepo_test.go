package pgrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	seq := 0
	repo := New(mockDB, func() string {
		seq++
		return "id-" + string(rune('0'+seq))
	})
	return repo, mockDB
}

var userColumns = []string{"id", "surname", "name", "phone", "email", "password_hash"}

func TestRepository_CreateUser(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr error
		wantID    string
	}{
		{
			name: "Create user with generated id",
			user: &domain.User{Surname: "Ivanov", Name: "Ivan", Phone: "+7900", Email: "ivan@example.com", Password: "hash"},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insertUserQuery)).
					WithArgs("id-1", "Ivanov", "Ivan", "+7900", "ivan@example.com", "hash").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantID: "id-1",
		},
		{
			name: "Duplicate user",
			user: &domain.User{ID: "u-1", Email: "ivan@example.com"},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insertUserQuery)).
					WithArgs("u-1", "", "", "", "ivan@example.com", "").
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			expectErr: domain.ErrValidation,
			wantID:    "u-1",
		},
		{
			name: "Database error",
			user: &domain.User{ID: "u-2"},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insertUserQuery)).
					WithArgs("u-2", "", "", "", "", "").
					WillReturnError(errors.New("connection refused"))
			},
			expectErr: domain.ErrStorage,
			wantID:    "u-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreateUser(context.Background(), tt.user)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantID, tt.user.ID)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetUser(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr error
		result    *domain.User
	}{
		{
			name: "User found",
			id:   "u-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).AddRow("u-1", "Ivanov", "Ivan", "+7900", "ivan@example.com", "hash")
				mock.ExpectQuery(regexp.QuoteMeta(selectUserQuery)).WithArgs("u-1").WillReturnRows(rows)
			},
			result: &domain.User{ID: "u-1", Surname: "Ivanov", Name: "Ivan", Phone: "+7900", Email: "ivan@example.com", Password: "hash"},
		},
		{
			name: "User not found",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserQuery)).WithArgs("missing").WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrNotFound,
		},
		{
			name: "Database error",
			id:   "u-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserQuery)).WithArgs("u-1").WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetUser(context.Background(), tt.id)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindUserByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(userColumns).AddRow("u-1", "Ivanov", "Ivan", "", "ivan@example.com", "hash")
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailQuery)).WithArgs("ivan@example.com").WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailQuery)).WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns))

	user, err := repo.FindUserByEmail(context.Background(), "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	_, err = repo.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateUser(t *testing.T) {
	repo, mock := NewMock(t)
	user := &domain.User{ID: "u-1", Surname: "Petrov", Name: "Petr", Phone: "1", Email: "p@example.com", Password: "hash"}

	mock.ExpectExec(regexp.QuoteMeta(updateUserQuery)).
		WithArgs("Petrov", "Petr", "1", "p@example.com", "hash", "u-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(updateUserQuery)).
		WithArgs("Petrov", "Petr", "1", "p@example.com", "hash", "u-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.NoError(t, repo.UpdateUser(context.Background(), user))
	assert.ErrorIs(t, repo.UpdateUser(context.Background(), user), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
