package dto

import "github.com/shopspring/decimal"

// CreateQuoteRequest alta de cotización.
type CreateQuoteRequest struct {
	AccountID       string          `json:"accountId"`
	ProductName     string          `json:"productName"`
	Thickness       decimal.Decimal `json:"thickness"`
	Length          decimal.Decimal `json:"length"`
	Width           decimal.Decimal `json:"width"`
	PrintColorCount int             `json:"printColorCount"`
	VariableRate    decimal.Decimal `json:"variableRate"`
	DefectiveRate   int             `json:"defectiveRate"`
	PlateRound      decimal.Decimal `json:"plateRound"`
	PlateLength     decimal.Decimal `json:"plateLength"`
	PlateCost       int64           `json:"plateCost"`
	PlateCount      int             `json:"plateCount"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	MinQuantity     int64           `json:"minQuantity"`
}

// UpdateQuoteRequest edición de cotización.
type UpdateQuoteRequest struct {
	ProductName     *string          `json:"productName"`
	Thickness       *decimal.Decimal `json:"thickness"`
	Length          *decimal.Decimal `json:"length"`
	Width           *decimal.Decimal `json:"width"`
	PrintColorCount *int             `json:"printColorCount"`
	VariableRate    *decimal.Decimal `json:"variableRate"`
	DefectiveRate   *int             `json:"defectiveRate"`
	PlateRound      *decimal.Decimal `json:"plateRound"`
	PlateLength     *decimal.Decimal `json:"plateLength"`
	PlateCost       *int64           `json:"plateCost"`
	PlateCount      *int             `json:"plateCount"`
	UnitPrice       *decimal.Decimal `json:"unitPrice"`
	MinQuantity     *int64           `json:"minQuantity"`
}
