package entity

import "time"

// Stock saldo actual en bodega de un producto. Cada producto tiene a lo sumo
// un registro de stock activo; Balance debe coincidir siempre con el Balance
// del asiento más reciente de su historial.
type Stock struct {
	ID        string
	ProductID string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product
	History []StockHistory
}

// StockHistory asiento del libro de stock. Append-only: nunca se edita ni se
// borra; es la pista de auditoría de cada cambio de saldo.
// Invariante: Balance(N) = Balance(N-1) + Quantity(N), salvo el primer asiento
// que establece la línea base.
type StockHistory struct {
	ID        string
	StockID   string
	Type      StockHistoryType
	Quantity  int64 // delta con signo
	Balance   int64 // saldo absoluto resultante
	CreatedAt time.Time
}
