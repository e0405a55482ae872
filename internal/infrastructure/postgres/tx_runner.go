package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Fabrica-api/internal/application/stock"
	"github.com/jhoicas/Fabrica-api/internal/application/workorder"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

// Ensure TxRunner implements workorder.TxRunner and stock.TxRunner.
var _ workorder.TxRunner = (*TxRunner)(nil)
var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es la unidad de trabajo de creación y completado de
// órdenes.
func (r *TxRunner) Run(ctx context.Context, fn func(
	workOrderRepo repository.WorkOrderRepository,
	seqRepo repository.WorkOrderSeqRepository,
	stockRepo repository.StockRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	workOrderRepo := NewWorkOrderRepository(tx)
	seqRepo := NewWorkOrderSeqRepository(tx)
	stockRepo := NewStockRepository(tx)
	historyRepo := NewStockHistoryRepository(tx)

	if err := fn(workOrderRepo, seqRepo, stockRepo, historyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunStock inicia una transacción con solo los repos del libro de stock
// (ajustes de inventario y entregas).
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockRepository(tx)
	historyRepo := NewStockHistoryRepository(tx)

	if err := fn(stockRepo, historyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
