package pgrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/jackc/pgx/v5"
)

const (
	insertSeatQuery = `
		INSERT INTO seats (id, wagon_id, number, available, price_multiplier)
		VALUES ($1, $2, $3, $4, $5)
	`
	selectSeatQuery = "SELECT id, wagon_id, number, available, price_multiplier FROM seats WHERE id = $1"
	updateSeatQuery = `
		UPDATE seats
		SET wagon_id = $1, number = $2, available = $3, price_multiplier = $4
		WHERE id = $5
	`
	setSeatAvailabilityQuery  = "UPDATE seats SET available = $1 WHERE id = $2"
	swapSeatAvailabilityQuery = "UPDATE seats SET available = $1 WHERE id = $2 AND available = $3"
	seatAvailabilityQuery     = "SELECT available FROM seats WHERE id = $1"
)

func (r *Repository) CreateSeat(ctx context.Context, seat *domain.Seat) error {
	r.assignID(&seat.ID)
	_, err := r.db.Exec(ctx, insertSeatQuery, seat.ID, seat.WagonID, seat.Number, seat.Available, seat.PriceMultiplier)
	if err != nil {
		return insertErr("create seat", "seat", seat.ID, err)
	}
	return nil
}

func (r *Repository) GetSeat(ctx context.Context, id string) (*domain.Seat, error) {
	var s domain.Seat
	err := r.db.QueryRow(ctx, selectSeatQuery, id).Scan(&s.ID, &s.WagonID, &s.Number, &s.Available, &s.PriceMultiplier)
	if err != nil {
		return nil, rowErr("get seat", "seat", id, err)
	}
	return &s, nil
}

func (r *Repository) UpdateSeat(ctx context.Context, seat *domain.Seat) error {
	tag, err := r.db.Exec(ctx, updateSeatQuery, seat.WagonID, seat.Number, seat.Available, seat.PriceMultiplier, seat.ID)
	return affectedOne("update seat", "seat", seat.ID, tag, err)
}

// SetSeatAvailability writes the flag unconditionally. PostgreSQL counts a
// matched row as affected even when the value does not change, so repeating
// the call is a successful no-op.
func (r *Repository) SetSeatAvailability(ctx context.Context, seatID string, available bool) error {
	tag, err := r.db.Exec(ctx, setSeatAvailabilityQuery, available, seatID)
	return affectedOne("set seat availability", "seat", seatID, tag, err)
}

// SwapSeatAvailability writes the flag only if it currently equals expected.
// It reports false without error when the current value differs.
func (r *Repository) SwapSeatAvailability(ctx context.Context, seatID string, expected, available bool) (bool, error) {
	tag, err := r.db.Exec(ctx, swapSeatAvailabilityQuery, available, seatID, expected)
	if err != nil {
		return false, storageErr("swap seat availability", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	var current bool
	err = r.db.QueryRow(ctx, seatAvailabilityQuery, seatID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, notFound("seat", seatID)
	}
	if err != nil {
		return false, storageErr("read seat availability", err)
	}
	return false, nil
}
