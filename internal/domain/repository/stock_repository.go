package repository

import "github.com/jhoicas/Fabrica-api/internal/domain/entity"

// StockRepository puerto del saldo de stock por producto.
type StockRepository interface {
	GetByID(id string) (*entity.Stock, error)
	GetByProduct(productID string) (*entity.Stock, error)
	// GetByProductForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// mutaciones concurrentes del mismo producto dentro de una transacción.
	GetByProductForUpdate(productID string) (*entity.Stock, error)
	Create(stock *entity.Stock) error
	UpdateBalance(id string, balance int64) error
	List(limit, offset int) ([]*entity.Stock, int, error)
}

// StockHistoryRepository puerto del historial de stock (libro append-only).
// Los asientos jamás se editan ni se borran.
type StockHistoryRepository interface {
	Append(h *entity.StockHistory) error
	// Latest devuelve el asiento más reciente del stock, o nil si no hay.
	Latest(stockID string) (*entity.StockHistory, error)
	ListByStock(stockID string) ([]*entity.StockHistory, error)
}
