package repository

import "github.com/jhoicas/Fabrica-api/internal/domain/entity"

// QuoteRepository puerto de persistencia de cotizaciones.
type QuoteRepository interface {
	Create(q *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	List(limit, offset int) ([]*entity.Quote, int, error)
	Update(q *entity.Quote) error
	DeleteByIDs(ids []string) (int64, error)
}
