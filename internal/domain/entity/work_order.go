package entity

import "time"

// WorkOrder orden de trabajo de producción.
// El ID es el identificador de negocio {período}-{seq} (ej. "2024-03-007"),
// generado por el asignador de secuencia o provisto por el cliente en
// importaciones/migraciones.
type WorkOrder struct {
	ID        string
	AccountID string
	ProductID string

	OrderedAt time.Time
	DeliverBy time.Time

	OrderQuantity    int64
	IsUrgent         bool
	ShouldBePunctual bool

	PlateStatus  PlateStatus
	IsPlateReady bool

	DeliveryMethod DeliveryMethod
	WorkMemo       string
	DeliveryMemo   string

	Status WorkOrderStatus

	// CompletedQuantity es acumulado (no un delta); el flujo de completado
	// concilia el valor reportado contra este campo para mover el stock.
	CompletedQuantity int64
	CompletedAt       *time.Time

	DeliveredQuantity int64
	DeliveredAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relaciones cargadas bajo demanda por los repositorios.
	Account *Account
	Product *Product
}
