package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository sobre PostgreSQL (usable con
// pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `
	id, account_id, product_name, thickness, length, width,
	print_color_count, variable_rate, defective_rate,
	plate_round, plate_length, plate_cost, plate_count,
	unit_price, min_quantity, created_at, updated_at`

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	err := row.Scan(
		&q.ID, &q.AccountID, &q.ProductName, &q.Thickness, &q.Length, &q.Width,
		&q.PrintColorCount, &q.VariableRate, &q.DefectiveRate,
		&q.PlateRound, &q.PlateLength, &q.PlateCost, &q.PlateCount,
		&q.UnitPrice, &q.MinQuantity, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Create persiste una cotización.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.AccountID, quote.ProductName, quote.Thickness, quote.Length, quote.Width,
		quote.PrintColorCount, quote.VariableRate, quote.DefectiveRate,
		quote.PlateRound, quote.PlateLength, quote.PlateCost, quote.PlateCount,
		quote.UnitPrice, quote.MinQuantity, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización, o nil si no existe.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	q, err := scanQuote(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return q, nil
}

// List lista cotizaciones, las más recientes primero.
func (r *QuoteRepo) List(limit, offset int) ([]*entity.Quote, int, error) {
	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM quotes`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count quotes: %w", err)
	}

	query := `SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan quote: %w", err)
		}
		out = append(out, q)
	}
	return out, count, rows.Err()
}

// Update actualiza una cotización.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	query := `
		UPDATE quotes SET
			product_name = $2, thickness = $3, length = $4, width = $5,
			print_color_count = $6, variable_rate = $7, defective_rate = $8,
			plate_round = $9, plate_length = $10, plate_cost = $11, plate_count = $12,
			unit_price = $13, min_quantity = $14, updated_at = $15
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.ProductName, quote.Thickness, quote.Length, quote.Width,
		quote.PrintColorCount, quote.VariableRate, quote.DefectiveRate,
		quote.PlateRound, quote.PlateLength, quote.PlateCost, quote.PlateCount,
		quote.UnitPrice, quote.MinQuantity, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByIDs borra cotizaciones por ID y devuelve cuántas se borraron.
func (r *QuoteRepo) DeleteByIDs(ids []string) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM quotes WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete quotes: %w", err)
	}
	return tag.RowsAffected(), nil
}
