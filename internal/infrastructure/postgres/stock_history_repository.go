package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

// StockHistoryRepo libro de stock sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: los asientos jamás se actualizan ni se borran.
type StockHistoryRepo struct {
	q Querier
}

// NewStockHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockHistoryRepository(q Querier) *StockHistoryRepo {
	return &StockHistoryRepo{q: q}
}

// Append agrega un asiento al final del historial. La posición en el libro la
// asigna la columna pos (BIGSERIAL): dos asientos con el mismo created_at
// conservan su orden de inserción.
func (r *StockHistoryRepo) Append(h *entity.StockHistory) error {
	query := `
		INSERT INTO stock_history (id, stock_id, type, quantity, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.StockID, h.Type, h.Quantity, h.Balance, h.CreatedAt)
	if err != nil {
		return fmt.Errorf("append stock history: %w", err)
	}
	return nil
}

// Latest devuelve el asiento más reciente del stock, o nil si no hay.
func (r *StockHistoryRepo) Latest(stockID string) (*entity.StockHistory, error) {
	query := `
		SELECT id, stock_id, type, quantity, balance, created_at
		FROM stock_history
		WHERE stock_id = $1
		ORDER BY pos DESC
		LIMIT 1`
	var h entity.StockHistory
	err := r.q.QueryRow(context.Background(), query, stockID).Scan(
		&h.ID, &h.StockID, &h.Type, &h.Quantity, &h.Balance, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest stock history: %w", err)
	}
	return &h, nil
}

// ListByStock devuelve el historial completo, del más antiguo al más reciente.
func (r *StockHistoryRepo) ListByStock(stockID string) ([]*entity.StockHistory, error) {
	query := `
		SELECT id, stock_id, type, quantity, balance, created_at
		FROM stock_history
		WHERE stock_id = $1
		ORDER BY pos ASC`
	rows, err := r.q.Query(context.Background(), query, stockID)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.StockHistory, 0)
	for rows.Next() {
		var h entity.StockHistory
		if err := rows.Scan(&h.ID, &h.StockID, &h.Type, &h.Quantity, &h.Balance, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}
