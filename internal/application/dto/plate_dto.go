package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

// CreatePlateRequest alta de plancha de impresión.
type CreatePlateRequest struct {
	Round      decimal.Decimal      `json:"round"`
	Length     decimal.Decimal      `json:"length"`
	Name       string               `json:"name"`
	Material   entity.PlateMaterial `json:"material"`
	Location   string               `json:"location"`
	Memo       string               `json:"memo"`
	ProductIDs []string             `json:"productIds"`
}

// UpdatePlateRequest edición de plancha. ProductIDs, si viene, reemplaza las
// asociaciones completas.
type UpdatePlateRequest struct {
	Round      *decimal.Decimal      `json:"round"`
	Length     *decimal.Decimal      `json:"length"`
	Name       *string               `json:"name"`
	Material   *entity.PlateMaterial `json:"material"`
	Location   *string               `json:"location"`
	Memo       *string               `json:"memo"`
	ProductIDs []string              `json:"productIds"`
}

// ListPlatesQuery filtros del listado de planchas.
type ListPlatesQuery struct {
	PageRequest
	Code        int    `query:"code"`
	AccountName string `query:"accountName"`
	ProductName string `query:"productName"`
	Name        string `query:"name"`
}
