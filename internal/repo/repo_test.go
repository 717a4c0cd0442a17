package repo

import (
	"testing"

	"github.com/GlebRadaev/railtickets/internal/config"
	csvrepo "github.com/GlebRadaev/railtickets/internal/repo/csv-repo"
	pgrepo "github.com/GlebRadaev/railtickets/internal/repo/pg-repo"
	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := New(pgrepo.New(mockDB, NewID))

	assert.IsType(t, &pgrepo.Repository{}, repos.UserRepo)
	assert.IsType(t, &pgrepo.Repository{}, repos.InventoryRepo)
	assert.IsType(t, &pgrepo.Repository{}, repos.TicketRepo)
	assert.IsType(t, &pgrepo.Repository{}, repos.RouteRepo)
	assert.IsType(t, &pgrepo.Repository{}, repos.ExpiryRepo)
	assert.IsType(t, &pgrepo.Repository{}, repos.SeedRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestOpen(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	tests := []struct {
		name          string
		cfg           *config.Config
		withConn      bool
		expected      any
		expectedError bool
	}{
		{name: "Postgres", cfg: &config.Config{Storage: config.StoragePostgres}, withConn: true, expected: &pgrepo.Repository{}},
		{name: "Postgres without connection", cfg: &config.Config{Storage: config.StoragePostgres}, expectedError: true},
		{name: "CSV", cfg: &config.Config{Storage: config.StorageCSV, CSVDir: t.TempDir()}, expected: &csvrepo.Repository{}},
		{name: "Unknown", cfg: &config.Config{Storage: "mongo"}, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var provider Provider
			var err error
			if tt.withConn {
				provider, err = Open(tt.cfg, mockDB)
			} else {
				provider, err = Open(tt.cfg, nil)
			}
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, provider)
		})
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewID())
}
