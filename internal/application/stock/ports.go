package stock

import (
	"context"

	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios de stock atados a una
// transacción de BD. Cada ajuste de inventario corre dentro de una.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		historyRepo repository.StockHistoryRepository,
	) error) error
}
