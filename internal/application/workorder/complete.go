package workorder

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

// Complete procesa un lote de completados. Cada orden corre como unidad de
// trabajo independiente y concurrente: un fallo no revierte a las hermanas y
// el resultado parcial es la forma esperada, no un error.
func (uc *UseCase) Complete(ctx context.Context, items []dto.CompleteWorkOrderRequest) dto.CompleteWorkOrdersResponse {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = dto.CompleteWorkOrdersResponse{
			Updated: make([]*entity.WorkOrder, 0, len(items)),
			Failed:  make([]dto.FailedWorkOrderCompletion, 0),
		}
	)

	for _, item := range items {
		wg.Add(1)
		go func(item dto.CompleteWorkOrderRequest) {
			defer wg.Done()
			updated, err := uc.completeOne(ctx, item)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.log.Warn().Err(err).Str("id", item.ID).Msg("completado de orden rechazado")
				out.Failed = append(out.Failed, dto.FailedWorkOrderCompletion{ID: item.ID, Reason: err.Error()})
				return
			}
			out.Updated = append(out.Updated, updated)
		}(item)
	}
	wg.Wait()

	return out
}

// completeOne concilia la cantidad completada reportada (acumulada) contra la
// registrada, asienta el delta en el libro de stock y actualiza la orden, todo
// dentro de una transacción con la fila de stock bloqueada para serializar
// completados concurrentes del mismo producto.
func (uc *UseCase) completeOne(ctx context.Context, in dto.CompleteWorkOrderRequest) (*entity.WorkOrder, error) {
	productID := in.ProductID
	if productID != "" {
		product, err := uc.products.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
	}

	var updated *entity.WorkOrder
	err := uc.txRunner.Run(ctx, func(
		workOrders repository.WorkOrderRepository,
		_ repository.WorkOrderSeqRepository,
		stocks repository.StockRepository,
		histories repository.StockHistoryRepository,
	) error {
		wo, err := workOrders.GetByID(in.ID)
		if err != nil {
			return err
		}
		if wo == nil {
			return domain.ErrWorkOrderNotFound
		}
		if productID == "" {
			productID = wo.ProductID
		}

		delta := in.CompletedQuantity - wo.CompletedQuantity
		if delta != 0 {
			if err := uc.applyLedgerDelta(stocks, histories, productID, delta); err != nil {
				return err
			}
		}

		if err := workOrders.UpdateCompletion(in.ID, in.CompletedQuantity, in.CompletedAt, in.Status); err != nil {
			return err
		}
		updated, err = workOrders.GetByID(in.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyLedgerDelta asienta un MANUFACTURED con el delta sobre el stock del
// producto, creándolo en 0 con su asiento semilla si aún no existe.
// El saldo nuevo sale del último asiento: Balance(N) = Balance(N-1) + delta.
func (uc *UseCase) applyLedgerDelta(
	stocks repository.StockRepository,
	histories repository.StockHistoryRepository,
	productID string,
	delta int64,
) error {
	now := time.Now()

	stock, err := stocks.GetByProductForUpdate(productID)
	if err != nil {
		return err
	}
	if stock == nil {
		stock = &entity.Stock{
			ID:        uuid.New().String(),
			ProductID: productID,
			Balance:   0,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := stocks.Create(stock); err != nil {
			return err
		}
		// La semilla queda estrictamente antes del MANUFACTURED de esta
		// misma transacción: la cola del libro jamás se decide por
		// desempate entre timestamps idénticos.
		if err := histories.Append(&entity.StockHistory{
			ID:        uuid.New().String(),
			StockID:   stock.ID,
			Type:      entity.StockHistoryCreated,
			Quantity:  0,
			Balance:   0,
			CreatedAt: now.Add(-time.Microsecond),
		}); err != nil {
			return err
		}
	}

	last, err := histories.Latest(stock.ID)
	if err != nil {
		return err
	}
	var lastBalance int64
	if last != nil {
		lastBalance = last.Balance
	}
	newBalance := lastBalance + delta

	if err := histories.Append(&entity.StockHistory{
		ID:        uuid.New().String(),
		StockID:   stock.ID,
		Type:      entity.StockHistoryManufactured,
		Quantity:  delta,
		Balance:   newBalance,
		CreatedAt: now,
	}); err != nil {
		return err
	}
	return stocks.UpdateBalance(stock.ID, newBalance)
}
