package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote cotización de un producto para un cliente.
type Quote struct {
	ID              string
	AccountID       string
	ProductName     string
	Thickness       decimal.Decimal
	Length          decimal.Decimal
	Width           decimal.Decimal
	PrintColorCount int
	VariableRate    decimal.Decimal
	DefectiveRate   int
	PlateRound      decimal.Decimal
	PlateLength     decimal.Decimal
	PlateCost       int64
	PlateCount      int
	UnitPrice       decimal.Decimal
	MinQuantity     int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
