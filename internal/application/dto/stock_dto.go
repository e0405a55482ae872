package dto

import "github.com/jhoicas/Fabrica-api/internal/domain/entity"

// AdjustStockRequest ajuste manual del saldo de un producto. Balance es el
// saldo absoluto resultante, no un delta; el caso de uso calcula el delta
// contra el último asiento del historial. Type distingue el motivo del asiento
// (STOCKTAKING por defecto, DISPOSED para desechos).
type AdjustStockRequest struct {
	ID        string                  `json:"id"` // vacío si el producto aún no tiene stock
	ProductID string                  `json:"productId"`
	Balance   int64                   `json:"balance"`
	Type      entity.StockHistoryType `json:"type"`
}

// FailedStockAdjustment ajuste rechazado con su causa.
type FailedStockAdjustment struct {
	ProductID string `json:"productId"`
	Reason    string `json:"reason"`
}
