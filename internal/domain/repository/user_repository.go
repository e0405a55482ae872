package repository

import "github.com/jhoicas/Fabrica-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, int, error)
	Update(u *entity.User) error
	Delete(id string) error
}
