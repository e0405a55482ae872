// Package stock implementa el libro de stock: historial append-only de
// cambios de saldo por producto, con el saldo actual siempre igual al del
// asiento más reciente.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
	"github.com/jhoicas/Fabrica-api/pkg/logger"
)

// UseCase casos de uso de stock: ajuste por inventario físico y listados.
type UseCase struct {
	txRunner  TxRunner
	stocks    repository.StockRepository
	histories repository.StockHistoryRepository
	products  repository.ProductRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	stocks repository.StockRepository,
	histories repository.StockHistoryRepository,
	products repository.ProductRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{txRunner: txRunner, stocks: stocks, histories: histories, products: products, log: log}
}

// Adjust registra ajustes de inventario físico (stocktaking) por lote. Cada
// ítem es una unidad de trabajo independiente; los rechazados vuelven con su
// causa sin afectar al resto.
func (uc *UseCase) Adjust(ctx context.Context, items []dto.AdjustStockRequest) ([]*entity.Stock, []dto.FailedStockAdjustment) {
	updated := make([]*entity.Stock, 0, len(items))
	failed := make([]dto.FailedStockAdjustment, 0)

	for _, item := range items {
		stock, err := uc.adjustOne(ctx, item)
		if err != nil {
			uc.log.Warn().Err(err).Str("productId", item.ProductID).Msg("ajuste de stock rechazado")
			failed = append(failed, dto.FailedStockAdjustment{ProductID: item.ProductID, Reason: err.Error()})
			continue
		}
		updated = append(updated, stock)
	}
	return updated, failed
}

// adjustOne aplica un ajuste dentro de una transacción con la fila de stock
// bloqueada. Idempotente: si el último asiento ya registra el saldo contado no
// se escribe nada. El delta del asiento se calcula contra el Balance del
// último asiento, de modo que Balance(N) = Balance(N-1) + Quantity(N) se
// sostiene para todo asiento.
func (uc *UseCase) adjustOne(ctx context.Context, in dto.AdjustStockRequest) (*entity.Stock, error) {
	entryType := in.Type
	if entryType == "" {
		entryType = entity.StockHistoryStocktaking
	}
	if entryType != entity.StockHistoryStocktaking && entryType != entity.StockHistoryDisposed {
		return nil, fmt.Errorf("%w: tipo de asiento %q no admitido en ajustes", domain.ErrInvalidInput, entryType)
	}

	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	var result *entity.Stock
	err = uc.txRunner.RunStock(ctx, func(
		stocks repository.StockRepository,
		histories repository.StockHistoryRepository,
	) error {
		now := time.Now()

		stock, err := stocks.GetByProductForUpdate(in.ProductID)
		if err != nil {
			return err
		}

		// Primer contacto: stock nuevo con asiento semilla CREATED.
		if stock == nil {
			stock = &entity.Stock{
				ID:        uuid.New().String(),
				ProductID: in.ProductID,
				Balance:   in.Balance,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := stocks.Create(stock); err != nil {
				return err
			}
			if err := histories.Append(&entity.StockHistory{
				ID:        uuid.New().String(),
				StockID:   stock.ID,
				Type:      entity.StockHistoryCreated,
				Quantity:  in.Balance,
				Balance:   in.Balance,
				CreatedAt: now,
			}); err != nil {
				return err
			}
			result = stock
			return nil
		}

		last, err := histories.Latest(stock.ID)
		if err != nil {
			return err
		}
		if last != nil && last.Balance == in.Balance {
			// Mismo saldo contado: no-op, sin asiento nuevo.
			result = stock
			return nil
		}
		var lastBalance int64
		if last != nil {
			lastBalance = last.Balance
		}

		if err := histories.Append(&entity.StockHistory{
			ID:        uuid.New().String(),
			StockID:   stock.ID,
			Type:      entryType,
			Quantity:  in.Balance - lastBalance,
			Balance:   in.Balance,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		if err := stocks.UpdateBalance(stock.ID, in.Balance); err != nil {
			return err
		}
		stock.Balance = in.Balance
		stock.UpdatedAt = now
		result = stock
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List devuelve la página de stocks.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[*entity.Stock], error) {
	page.DefaultPage()
	rows, count, err := uc.stocks.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse[*entity.Stock]{
		Count:   count,
		Rows:    rows,
		HasMore: dto.HasMore(page.Limit, page.Offset, count),
	}, nil
}

// History devuelve el historial completo de un stock, del más antiguo al más
// reciente.
func (uc *UseCase) History(ctx context.Context, stockID string) ([]*entity.StockHistory, error) {
	stock, err := uc.stocks.GetByID(stockID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	return uc.histories.ListByStock(stockID)
}
