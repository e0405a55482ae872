package repository

import "github.com/jhoicas/Fabrica-api/internal/domain/entity"

// PlateFilter filtros de listado de planchas.
type PlateFilter struct {
	Code        int
	AccountName string
	ProductName string
	Name        string
	Limit       int
	Offset      int
}

// PlateRepository puerto de persistencia de planchas.
type PlateRepository interface {
	Create(p *entity.Plate) error
	GetByID(id string) (*entity.Plate, error)
	List(f PlateFilter) ([]*entity.Plate, int, error)
	Update(p *entity.Plate) error
	DeleteByIDs(ids []string) (int64, error)
}
