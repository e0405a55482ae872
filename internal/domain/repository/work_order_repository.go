package repository

import (
	"time"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

// WorkOrderFilter filtros de listado de órdenes de trabajo. Los rangos de
// fecha en cero no acotan: un filtro sin rango recorre todo el historial.
type WorkOrderFilter struct {
	OrderedFrom      time.Time
	OrderedTo        time.Time
	AccountName      string
	ProductName      string
	ProductID        string
	NeedPlate        bool
	IncludeCompleted bool
	Limit            int
	Offset           int
}

// WorkOrderRepository puerto de persistencia de órdenes de trabajo.
type WorkOrderRepository interface {
	Create(wo *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	// List devuelve la página y el total que matchea el filtro.
	List(f WorkOrderFilter) ([]*entity.WorkOrder, int, error)
	ListAll(f WorkOrderFilter) ([]*entity.WorkOrder, error)
	Update(wo *entity.WorkOrder) error
	// UpdateCompletion actualiza solo los campos de completado.
	UpdateCompletion(id string, completedQuantity int64, completedAt *time.Time, status entity.WorkOrderStatus) error
	DeleteByIDs(ids []string) (int64, error)
	// ListOpenByDeadline devuelve órdenes sin completar con fecha límite hasta deadline.
	ListOpenByDeadline(deadline time.Time) ([]*entity.WorkOrder, error)
	CountByStatus(from, to time.Time) (map[entity.WorkOrderStatus]int, error)
	// CountByPrintSide cuenta órdenes por caras de impresión del producto.
	CountByPrintSide(from, to time.Time) (map[entity.PrintSide]int, error)
}
