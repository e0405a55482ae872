package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx). El saldo solo se muta junto con un asiento en el historial.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func (r *StockRepo) scanOne(row pgx.Row, op string) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ID, &s.ProductID, &s.Balance, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// GetByID obtiene un stock por ID, o nil si no existe.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `SELECT id, product_id, balance, created_at, updated_at FROM stocks WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock")
}

// GetByProduct obtiene el stock de un producto, o nil si aún no tiene.
func (r *StockRepo) GetByProduct(productID string) (*entity.Stock, error) {
	query := `SELECT id, product_id, balance, created_at, updated_at FROM stocks WHERE product_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID), "get stock by product")
}

// GetByProductForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
// mutaciones concurrentes del mismo producto dentro de una transacción.
func (r *StockRepo) GetByProductForUpdate(productID string) (*entity.Stock, error) {
	query := `
		SELECT id, product_id, balance, created_at, updated_at
		FROM stocks WHERE product_id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID), "get stock for update")
}

// Create persiste un stock nuevo.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, product_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.ProductID, stock.Balance, stock.CreatedAt, stock.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create stock: %w", err)
	}
	return nil
}

// UpdateBalance fija el saldo del stock.
func (r *StockRepo) UpdateBalance(id string, balance int64) error {
	query := `UPDATE stocks SET balance = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, balance)
	if err != nil {
		return fmt.Errorf("update stock balance: %w", err)
	}
	return nil
}

// List devuelve la página de stocks con el producto precargado.
func (r *StockRepo) List(limit, offset int) ([]*entity.Stock, int, error) {
	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM stocks`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count stocks: %w", err)
	}

	query := `
		SELECT s.id, s.product_id, s.balance, s.created_at, s.updated_at, p.name
		FROM stocks s
		JOIN products p ON p.id = s.product_id
		ORDER BY p.name ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Stock, 0)
	for rows.Next() {
		var (
			s           entity.Stock
			productName string
		)
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Balance, &s.CreatedAt, &s.UpdatedAt, &productName); err != nil {
			return nil, 0, fmt.Errorf("scan stock: %w", err)
		}
		s.Product = &entity.Product{ID: s.ProductID, Name: productName}
		out = append(out, &s)
	}
	return out, count, rows.Err()
}
