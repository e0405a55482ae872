package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	AccountID string          `json:"accountId"`
	Name      string          `json:"name"`
	Thickness decimal.Decimal `json:"thickness"`
	Length    decimal.Decimal `json:"length"`
	Width     decimal.Decimal `json:"width"`

	ExtColor        string `json:"extColor"`
	ExtIsAntistatic bool   `json:"extIsAntistatic"`
	ExtMemo         string `json:"extMemo"`

	PrintSide            entity.PrintSide `json:"printSide"`
	PrintFrontColorCount int              `json:"printFrontColorCount"`
	PrintFrontColor      string           `json:"printFrontColor"`
	PrintBackColorCount  int              `json:"printBackColorCount"`
	PrintBackColor       string           `json:"printBackColor"`
	PrintMemo            string           `json:"printMemo"`

	PackMaterial   string                `json:"packMaterial"`
	PackUnit       int                   `json:"packUnit"`
	DeliveryMethod entity.DeliveryMethod `json:"deliveryMethod"`
	Memo           string                `json:"memo"`
}

// UpdateProductRequest edición de producto.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Thickness *decimal.Decimal `json:"thickness"`
	Length    *decimal.Decimal `json:"length"`
	Width     *decimal.Decimal `json:"width"`

	ExtColor        *string `json:"extColor"`
	ExtIsAntistatic *bool   `json:"extIsAntistatic"`
	ExtMemo         *string `json:"extMemo"`

	PrintSide            *entity.PrintSide `json:"printSide"`
	PrintFrontColorCount *int              `json:"printFrontColorCount"`
	PrintFrontColor      *string           `json:"printFrontColor"`
	PrintBackColorCount  *int              `json:"printBackColorCount"`
	PrintBackColor       *string           `json:"printBackColor"`
	PrintMemo            *string           `json:"printMemo"`

	PackMaterial   *string                `json:"packMaterial"`
	PackUnit       *int                   `json:"packUnit"`
	DeliveryMethod *entity.DeliveryMethod `json:"deliveryMethod"`
	Memo           *string                `json:"memo"`
}

// ListProductsQuery filtros del listado de productos.
type ListProductsQuery struct {
	PageRequest
	AccountName string `query:"accountName"`
	Name        string `query:"name"`
}
