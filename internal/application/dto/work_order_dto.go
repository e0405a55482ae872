package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

// CreateWorkOrderRequest alta de una orden de trabajo.
// ID es opcional: si viene (importación/migración) se respeta y el contador
// del período avanza para no chocar con IDs generados a futuro.
type CreateWorkOrderRequest struct {
	ID               string                 `json:"id"`
	AccountID        string                 `json:"accountId"`
	ProductID        string                 `json:"productId"`
	OrderedAt        time.Time              `json:"orderedAt"`
	DeliverBy        time.Time              `json:"deliverBy"`
	OrderQuantity    int64                  `json:"orderQuantity"`
	IsUrgent         bool                   `json:"isUrgent"`
	ShouldBePunctual bool                   `json:"shouldBePunctual"`
	PlateStatus      entity.PlateStatus     `json:"plateStatus"`
	IsPlateReady     bool                   `json:"isPlateReady"`
	DeliveryMethod   entity.DeliveryMethod  `json:"deliveryMethod"`
	WorkMemo         string                 `json:"workMemo"`
	DeliveryMemo     string                 `json:"deliveryMemo"`
	Status           entity.WorkOrderStatus `json:"workOrderStatus"`
}

// ImportWorkOrderRequest fila de importación masiva: el producto se resuelve
// por cliente + nombre + medidas.
type ImportWorkOrderRequest struct {
	ID               string                 `json:"id"`
	AccountName      string                 `json:"accountName"`
	ProductName      string                 `json:"productName"`
	Thickness        decimal.Decimal        `json:"thickness"`
	Length           decimal.Decimal        `json:"length"`
	Width            decimal.Decimal        `json:"width"`
	OrderedAt        time.Time              `json:"orderedAt"`
	DeliverBy        time.Time              `json:"deliverBy"`
	OrderQuantity    int64                  `json:"orderQuantity"`
	IsUrgent         bool                   `json:"isUrgent"`
	ShouldBePunctual bool                   `json:"shouldBePunctual"`
	DeliveryMethod   entity.DeliveryMethod  `json:"deliveryMethod"`
	WorkMemo         string                 `json:"workMemo"`
	DeliveryMemo     string                 `json:"deliveryMemo"`
	Status           entity.WorkOrderStatus `json:"workOrderStatus"`
}

// FailedWorkOrderImport fila rechazada de una importación masiva con su causa.
type FailedWorkOrderImport struct {
	ImportWorkOrderRequest
	Reason string `json:"reason"`
}

// ImportWorkOrdersResponse resultado de la importación masiva. La capa HTTP
// decide el status según createdCount y failedList (todo falló / parcial / todo ok).
type ImportWorkOrdersResponse struct {
	CreatedCount int                     `json:"createdCount"`
	FailedList   []FailedWorkOrderImport `json:"failedList"`
}

// UpdateWorkOrderRequest actualización de una orden existente.
type UpdateWorkOrderRequest struct {
	DeliverBy        *time.Time              `json:"deliverBy"`
	OrderQuantity    *int64                  `json:"orderQuantity"`
	IsUrgent         *bool                   `json:"isUrgent"`
	ShouldBePunctual *bool                   `json:"shouldBePunctual"`
	PlateStatus      *entity.PlateStatus     `json:"plateStatus"`
	IsPlateReady     *bool                   `json:"isPlateReady"`
	DeliveryMethod   *entity.DeliveryMethod  `json:"deliveryMethod"`
	WorkMemo         *string                 `json:"workMemo"`
	DeliveryMemo     *string                 `json:"deliveryMemo"`
	Status           *entity.WorkOrderStatus `json:"workOrderStatus"`
}

// BulkUpdateWorkOrderRequest ítem de actualización masiva.
type BulkUpdateWorkOrderRequest struct {
	ID string `json:"id"`
	UpdateWorkOrderRequest
}

// FailedWorkOrderUpdate ítem de actualización rechazado con su causa.
type FailedWorkOrderUpdate struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkUpdateWorkOrdersResponse resultado de una actualización por lote.
type BulkUpdateWorkOrdersResponse struct {
	Updated []*entity.WorkOrder     `json:"updated"`
	Failed  []FailedWorkOrderUpdate `json:"failed"`
}

// CompleteWorkOrderRequest ítem de completado. CompletedQuantity es el
// acumulado reportado, no un delta.
type CompleteWorkOrderRequest struct {
	ID                string                 `json:"id"`
	CompletedQuantity int64                  `json:"completedQuantity"`
	CompletedAt       *time.Time             `json:"completedAt"`
	Status            entity.WorkOrderStatus `json:"workOrderStatus"`
	ProductID         string                 `json:"productId"`
}

// FailedWorkOrderCompletion ítem de completado rechazado con su causa.
type FailedWorkOrderCompletion struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// CompleteWorkOrdersResponse resultado de un completado por lote: cada ítem
// es una unidad de trabajo independiente, los éxitos no se revierten por los
// fallos de sus hermanos.
type CompleteWorkOrdersResponse struct {
	Updated []*entity.WorkOrder         `json:"updated"`
	Failed  []FailedWorkOrderCompletion `json:"failed"`
}

// ListWorkOrdersQuery filtros del listado.
type ListWorkOrdersQuery struct {
	PageRequest
	OrderedFrom      string `query:"orderedFrom"` // yyyy-mm-dd
	OrderedTo        string `query:"orderedTo"`
	AccountName      string `query:"accountName"`
	ProductName      string `query:"productName"`
	IncludeCompleted bool   `query:"includeCompleted"`
}

// WorkOrderStats conteos agregados del rango pedido.
type WorkOrderStats struct {
	ByStatus    map[entity.WorkOrderStatus]int `json:"byStatus"`
	ByPrintSide map[entity.PrintSide]int       `json:"byPrintSide"`
}

// WorkOrdersByDeadline órdenes abiertas agrupadas por urgencia de entrega.
type WorkOrdersByDeadline struct {
	Overdue  []*entity.WorkOrder `json:"overdue"`
	Imminent []*entity.WorkOrder `json:"imminent"`
}
