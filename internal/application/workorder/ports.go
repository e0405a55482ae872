package workorder

import (
	"context"

	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la creación de
// órdenes y para cada completado individual.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		workOrderRepo repository.WorkOrderRepository,
		seqRepo repository.WorkOrderSeqRepository,
		stockRepo repository.StockRepository,
		historyRepo repository.StockHistoryRepository,
	) error) error
}
