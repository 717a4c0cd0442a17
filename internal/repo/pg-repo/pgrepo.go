package pgrepo

import (
	"errors"
	"fmt"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/GlebRadaev/railtickets/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Repository is the PostgreSQL storage provider. Every operation is a single
// parameterized statement; joins run inside the database.
type Repository struct {
	db    pg.Database
	newID domain.IDGenerator
}

func New(db pg.Database, newID domain.IDGenerator) *Repository {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Repository{
		db:    db,
		newID: newID,
	}
}

func (r *Repository) assignID(id *string) {
	if *id == "" {
		*id = r.newID()
	}
}

func storageErr(op string, err error) error {
	zap.L().Error("postgres operation failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

func insertErr(op, kind, id string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %s already exists: %w", kind, id, domain.ErrValidation)
	}
	// the referenced user, route, seat or ticket is gone
	if hasCode(err, foreignKeyViolation) {
		return fmt.Errorf("%s %s references a missing row: %w", kind, id, domain.ErrNotFound)
	}
	return storageErr(op, err)
}

func rowErr(op, kind, id string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound(kind, id)
	}
	return storageErr(op, err)
}

func affectedOne(op, kind, id string, tag pgconn.CommandTag, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %s conflicts with an existing row: %w", kind, id, domain.ErrValidation)
	}
	if err != nil {
		return storageErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(kind, id)
	}
	return nil
}
