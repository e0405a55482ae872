package dto

import (
	"time"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

// CreateDeliveryRequest alta de entrega. WorkOrderID vacío significa entrega
// directa desde stock.
type CreateDeliveryRequest struct {
	ProductID   string                `json:"productId"`
	WorkOrderID string                `json:"workOrderId"`
	Date        time.Time             `json:"date"`
	Method      entity.DeliveryMethod `json:"method"`
	Quantity    int64                 `json:"quantity"`
	IsDelivered bool                  `json:"isDelivered"`
	Memo        string                `json:"memo"`
}

// UpdateDeliveryRequest edición de entrega.
type UpdateDeliveryRequest struct {
	Date        *time.Time             `json:"date"`
	Method      *entity.DeliveryMethod `json:"method"`
	Quantity    *int64                 `json:"quantity"`
	IsDelivered *bool                  `json:"isDelivered"`
	Memo        *string                `json:"memo"`
}

// ListDeliveriesQuery filtros del listado de entregas por fecha.
type ListDeliveriesQuery struct {
	PageRequest
	Date   string                `query:"date"` // yyyy-mm-dd, por defecto hoy
	Method entity.DeliveryMethod `query:"method"`
}
