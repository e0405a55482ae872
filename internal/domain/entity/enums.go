package entity

// WorkOrderStatus estado de avance de una orden de trabajo.
type WorkOrderStatus string

const (
	WorkOrderNotStarted WorkOrderStatus = "NOT_STARTED"
	WorkOrderExtruding  WorkOrderStatus = "EXTRUDING"
	WorkOrderPrinting   WorkOrderStatus = "PRINTING"
	WorkOrderCutting    WorkOrderStatus = "CUTTING"
	WorkOrderCompleted  WorkOrderStatus = "COMPLETED"
)

// ValidWorkOrderStatus indica si s es un estado conocido.
func ValidWorkOrderStatus(s WorkOrderStatus) bool {
	switch s {
	case WorkOrderNotStarted, WorkOrderExtruding, WorkOrderPrinting, WorkOrderCutting, WorkOrderCompleted:
		return true
	}
	return false
}

// PlateStatus estado de la plancha de impresión requerida por la orden.
type PlateStatus string

const (
	PlateStatusNew    PlateStatus = "NEW"
	PlateStatusUpdate PlateStatus = "UPDATE"
	PlateStatusConfirm PlateStatus = "CONFIRM"
)

// PrintSide caras de impresión del producto.
type PrintSide string

const (
	PrintSideNone   PrintSide = "NONE"
	PrintSideSingle PrintSide = "SINGLE"
	PrintSideDouble PrintSide = "DOUBLE"
)

// DeliveryMethod método de entrega acordado.
type DeliveryMethod string

const (
	DeliveryMethodTBD      DeliveryMethod = "TBD"
	DeliveryMethodCourier  DeliveryMethod = "COURIER"
	DeliveryMethodDirect   DeliveryMethod = "DIRECT"
	DeliveryMethodExpress  DeliveryMethod = "EXPRESS"
	DeliveryMethodFreight  DeliveryMethod = "FREIGHT"
)

// PlateMaterial material de la plancha.
type PlateMaterial string

const (
	PlateMaterialBrass     PlateMaterial = "BRASS"
	PlateMaterialSteel     PlateMaterial = "STEEL"
)

// StockHistoryType tipo de asiento en el historial de stock (libro append-only).
type StockHistoryType string

const (
	StockHistoryCreated      StockHistoryType = "CREATED"
	StockHistoryStocktaking  StockHistoryType = "STOCKTAKING"
	StockHistoryManufactured StockHistoryType = "MANUFACTURED"
	StockHistoryDelivered    StockHistoryType = "DELIVERED"
	StockHistoryDisposed     StockHistoryType = "DISPOSED"
)
