package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, email, password_hash, name, role, status, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un usuario. Email repetido devuelve ErrEmailAlreadyExists.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.Status, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByEmail busca un usuario por email, o nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// List lista usuarios con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, int, error) {
	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY email ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, count, rows.Err()
}

// Update actualiza un usuario.
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, name = $4, role = $5, status = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.Status, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete borra un usuario.
func (r *UserRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
