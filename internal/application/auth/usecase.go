package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
	"github.com/jhoicas/Fabrica-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación y gestión de usuarios.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste. Devuelve
// ErrEmailAlreadyExists si el email ya está tomado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.users.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleOperator
	}
	if _, ok := entity.DefaultPermissions[role]; !ok {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Profile devuelve los datos del usuario autenticado, con los permisos
// efectivos de su rol.
func (uc *UseCase) Profile(userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ListUsers lista usuarios con paginación.
func (uc *UseCase) ListUsers(page dto.PageRequest) (*dto.ListResponse[*dto.UserResponse], error) {
	page.DefaultPage()
	users, count, err := uc.users.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	rows := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		rows = append(rows, toUserResponse(u))
	}
	return &dto.ListResponse[*dto.UserResponse]{
		Count:   count,
		Rows:    rows,
		HasMore: dto.HasMore(page.Limit, page.Offset, count),
	}, nil
}

// UpdateUser modifica nombre, rol, estado o password de un usuario.
func (uc *UseCase) UpdateUser(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if _, ok := entity.DefaultPermissions[*in.Role]; !ok {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Status != nil {
		if *in.Status != "active" && *in.Status != "disabled" {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// DeleteUser elimina un usuario.
func (uc *UseCase) DeleteUser(id string) error {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.users.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Status:      u.Status,
		Permissions: entity.DefaultPermissions[u.Role],
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
