package csvrepo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository is the flat-file storage provider. Every table lives in its own
// CSV file under dir; an operation loads the whole file, works on the slice
// and rewrites the file. Joins are nested scans over loaded tables.
type Repository struct {
	dir   string
	newID domain.IDGenerator

	// mu serialises read-modify-write cycles so a rewrite is never torn.
	mu sync.RWMutex
}

func New(dir string, newID domain.IDGenerator) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w: %w", dir, domain.ErrStorage, err)
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &Repository{
		dir:   dir,
		newID: newID,
	}, nil
}

func (r *Repository) assignID(id *string) {
	if *id == "" {
		*id = r.newID()
	}
}

// table describes how one entity kind maps onto CSV rows.
type table[T any] struct {
	file   string
	fields int
	id     func(*T) string
	encode func(*T) []string
	decode func([]string) (T, error)
}

func storageErr(op string, err error) error {
	zap.L().Error("csv operation failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
}

// load reads every row of the table. A missing or empty file is an empty table.
func load[T any](ctx context.Context, dir string, t table[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageErr("read "+t.file, err)
	}
	f, err := os.Open(filepath.Join(dir, t.file))
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, storageErr("open "+t.file, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = t.fields

	rows := make([]T, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, storageErr("read "+t.file, err)
		}
		row, err := t.decode(record)
		if err != nil {
			return nil, storageErr("decode "+t.file, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// store rewrites the table through a temporary file renamed over the old one.
func store[T any](ctx context.Context, dir string, t table[T], rows []T) error {
	if err := ctx.Err(); err != nil {
		return storageErr("write "+t.file, err)
	}
	tmp, err := os.CreateTemp(dir, t.file+".*.tmp")
	if err != nil {
		return storageErr("write "+t.file, err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	for i := range rows {
		if err := writer.Write(t.encode(&rows[i])); err != nil {
			tmp.Close()
			return storageErr("write "+t.file, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return storageErr("write "+t.file, err)
	}
	if err := tmp.Close(); err != nil {
		return storageErr("write "+t.file, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, t.file)); err != nil {
		return storageErr("replace "+t.file, err)
	}
	return nil
}

func find[T any](rows []T, t table[T], id string) (int, bool) {
	for i := range rows {
		if t.id(&rows[i]) == id {
			return i, true
		}
	}
	return -1, false
}

// insertRow appends row, rejecting a duplicate id. check runs against the
// loaded table and can veto the insert with its own error.
func insertRow[T any](ctx context.Context, r *Repository, kind string, t table[T], row *T, check func([]T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := load(ctx, r.dir, t)
	if err != nil {
		return err
	}
	id := t.id(row)
	if _, ok := find(rows, t, id); ok {
		return fmt.Errorf("%s %s already exists: %w", kind, id, domain.ErrValidation)
	}
	if check != nil {
		if err := check(rows); err != nil {
			return err
		}
	}
	return store(ctx, r.dir, t, append(rows, *row))
}

func getRow[T any](ctx context.Context, r *Repository, kind string, t table[T], id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := load(ctx, r.dir, t)
	if err != nil {
		return nil, err
	}
	i, ok := find(rows, t, id)
	if !ok {
		return nil, notFound(kind, id)
	}
	return &rows[i], nil
}

// modifyRow loads the table, lets apply change the row with the given id and
// writes the table back. apply reports whether anything changed.
func modifyRow[T any](ctx context.Context, r *Repository, kind string, t table[T], id string, apply func(rows []T, i int) (bool, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := load(ctx, r.dir, t)
	if err != nil {
		return err
	}
	i, ok := find(rows, t, id)
	if !ok {
		return notFound(kind, id)
	}
	changed, err := apply(rows, i)
	if err != nil || !changed {
		return err
	}
	return store(ctx, r.dir, t, rows)
}

func replaceRow[T any](ctx context.Context, r *Repository, kind string, t table[T], row *T) error {
	return modifyRow(ctx, r, kind, t, t.id(row), func(rows []T, i int) (bool, error) {
		rows[i] = *row
		return true, nil
	})
}
