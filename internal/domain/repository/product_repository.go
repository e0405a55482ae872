package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	AccountName string
	Name        string
	Limit       int
	Offset      int
}

// ProductRepository puerto de persistencia de productos.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// FindBySpec resuelve un producto por cliente + nombre + medidas, usado
	// por la importación masiva de órdenes de trabajo.
	FindBySpec(accountName, name string, thickness, length, width decimal.Decimal) (*entity.Product, error)
	List(f ProductFilter) ([]*entity.Product, int, error)
	Update(p *entity.Product) error
	DeleteByIDs(ids []string) (int64, error)
}
