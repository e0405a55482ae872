package entity

import "time"

// Delivery entrega de producto terminado, opcionalmente ligada a una orden.
type Delivery struct {
	ID          string
	ProductID   string
	WorkOrderID string // vacío si la entrega sale de stock
	Date        time.Time
	Method      DeliveryMethod
	Quantity    int64
	IsDelivered bool
	Memo        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Product *Product
}
