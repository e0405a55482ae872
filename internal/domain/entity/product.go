package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de la planta (bolsa/film impreso por cliente).
// La combinación cliente + nombre + espesor + largo + ancho identifica la
// especificación; la importación masiva de órdenes resuelve productos por ella.
type Product struct {
	ID        string
	AccountID string
	Name      string
	Thickness decimal.Decimal // mm, 3 decimales
	Length    decimal.Decimal // cm, 2 decimales
	Width     decimal.Decimal // cm, 2 decimales

	ExtColor        string
	ExtIsAntistatic bool
	ExtMemo         string

	PrintSide            PrintSide
	PrintFrontColorCount int
	PrintFrontColor      string
	PrintBackColorCount  int
	PrintBackColor       string
	PrintMemo            string

	PackMaterial   string
	PackUnit       int
	DeliveryMethod DeliveryMethod
	Memo           string

	CreatedAt time.Time
	UpdatedAt time.Time
}
