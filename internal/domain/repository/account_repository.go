package repository

import "github.com/jhoicas/Fabrica-api/internal/domain/entity"

// AccountRepository puerto de persistencia de clientes.
type AccountRepository interface {
	Create(a *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByName(name string) (*entity.Account, error)
	// List busca por nombre parcial; withContacts precarga contactos.
	List(name string, withContacts bool, limit, offset int) ([]*entity.Account, int, error)
	Update(a *entity.Account) error
	DeleteByIDs(ids []string) (int64, error)
}
