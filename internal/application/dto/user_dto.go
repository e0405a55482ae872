package dto

import (
	"time"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest credenciales de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin campos sensibles. Permissions son las capacidades
// efectivas del rol según la tabla estática por defecto.
type UserResponse struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	Role        string              `json:"role"`
	Status      string              `json:"status"`
	Permissions []entity.Permission `json:"permissions"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// LoginResponse token emitido + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest modificación de un usuario existente.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Password *string `json:"password"`
}
