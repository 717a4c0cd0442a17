package pgrepo

import (
	"context"

	"github.com/GlebRadaev/railtickets/internal/domain"
)

const (
	insertTransactionQuery = `
		INSERT INTO transactions (id, ticket_id, amount, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	selectTransactionQuery = `
		SELECT id, ticket_id, amount, payment_method, created_at
		FROM transactions
		WHERE id = $1
	`
	selectTicketTransactionsQuery = `
		SELECT id, ticket_id, amount, payment_method, created_at
		FROM transactions
		WHERE ticket_id = $1
		ORDER BY created_at, id
	`
)

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	r.assignID(&tx.ID)
	_, err := r.db.Exec(ctx, insertTransactionQuery, tx.ID, tx.TicketID, tx.Amount, tx.PaymentMethod, tx.CreatedAt.UTC())
	if err != nil {
		return insertErr("create transaction", "transaction", tx.ID, err)
	}
	return nil
}

func (r *Repository) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.QueryRow(ctx, selectTransactionQuery, id).
		Scan(&tx.ID, &tx.TicketID, &tx.Amount, &tx.PaymentMethod, &tx.CreatedAt)
	if err != nil {
		return nil, rowErr("get transaction", "transaction", id, err)
	}
	return &tx, nil
}

func (r *Repository) TransactionsForTicket(ctx context.Context, ticketID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, selectTicketTransactionsQuery, ticketID)
	if err != nil {
		return nil, storageErr("transactions for ticket", err)
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.TicketID, &tx.Amount, &tx.PaymentMethod, &tx.CreatedAt); err != nil {
			return nil, storageErr("scan transaction row", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("transactions for ticket", err)
	}
	return txs, nil
}
