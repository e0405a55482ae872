package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plate plancha de impresión física almacenada en la planta.
// Una plancha puede servir a varios productos (mismo arte, distinta medida).
type Plate struct {
	ID       string
	Code     int
	Round    decimal.Decimal // mm de circunferencia
	Length   decimal.Decimal // mm
	Name     string
	Material PlateMaterial
	Location string
	Memo     string

	ProductIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
