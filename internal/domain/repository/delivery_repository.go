package repository

import (
	"time"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

// DeliveryRepository puerto de persistencia de entregas.
type DeliveryRepository interface {
	Create(d *entity.Delivery) error
	GetByID(id string) (*entity.Delivery, error)
	ListByDate(date time.Time, method entity.DeliveryMethod, limit, offset int) ([]*entity.Delivery, int, error)
	Update(d *entity.Delivery) error
	DeleteByIDs(ids []string) (int64, error)
}
