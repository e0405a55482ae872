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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository sobre PostgreSQL (usable
// con pool o tx). Los contactos viven en su propia tabla y se reemplazan en
// bloque al actualizar.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste un cliente con sus contactos.
func (r *AccountRepo) Create(a *entity.Account) error {
	query := `
		INSERT INTO accounts (id, name, crn, delivery_method, memo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Name, a.CRN, a.DeliveryMethod, a.Memo, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create account: %w", err)
	}
	return r.insertContacts(a.ID, a.Contacts)
}

func (r *AccountRepo) insertContacts(accountID string, contacts []entity.Contact) error {
	for _, c := range contacts {
		query := `
			INSERT INTO contacts (id, account_id, title, is_base, phone, fax, email, address, memo)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		_, err := r.q.Exec(context.Background(), query,
			c.ID, accountID, c.Title, c.IsBase, c.Phone, c.Fax, c.Email, c.Address, c.Memo)
		if err != nil {
			return fmt.Errorf("insert contact: %w", err)
		}
	}
	return nil
}

func (r *AccountRepo) loadContacts(accountID string) ([]entity.Contact, error) {
	query := `
		SELECT id, account_id, title, is_base, phone, fax, email, address, memo
		FROM contacts WHERE account_id = $1
		ORDER BY is_base DESC, title ASC`
	rows, err := r.q.Query(context.Background(), query, accountID)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	defer rows.Close()

	out := make([]entity.Contact, 0)
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.AccountID, &c.Title, &c.IsBase, &c.Phone, &c.Fax, &c.Email, &c.Address, &c.Memo); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *AccountRepo) scanOne(row pgx.Row, op string) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(&a.ID, &a.Name, &a.CRN, &a.DeliveryMethod, &a.Memo, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}

// GetByID obtiene un cliente con sus contactos, o nil si no existe.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `SELECT id, name, crn, delivery_method, memo, created_at, updated_at FROM accounts WHERE id = $1`
	a, err := r.scanOne(r.q.QueryRow(context.Background(), query, id), "get account")
	if err != nil || a == nil {
		return a, err
	}
	a.Contacts, err = r.loadContacts(a.ID)
	return a, err
}

// GetByName obtiene un cliente por nombre exacto, o nil si no existe.
func (r *AccountRepo) GetByName(name string) (*entity.Account, error) {
	query := `SELECT id, name, crn, delivery_method, memo, created_at, updated_at FROM accounts WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get account by name")
}

// List busca clientes por nombre parcial.
func (r *AccountRepo) List(name string, withContacts bool, limit, offset int) ([]*entity.Account, int, error) {
	where := ` WHERE name ILIKE $1`
	args := []any{"%" + name + "%"}

	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM accounts`+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count accounts: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT id, name, crn, delivery_method, memo, created_at, updated_at
		FROM accounts` + where + `
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Account, 0)
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.CRN, &a.DeliveryMethod, &a.Memo, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if withContacts {
		for _, a := range out {
			contacts, err := r.loadContacts(a.ID)
			if err != nil {
				return nil, 0, err
			}
			a.Contacts = contacts
		}
	}
	return out, count, nil
}

// Update actualiza un cliente y reemplaza sus contactos en bloque.
func (r *AccountRepo) Update(a *entity.Account) error {
	query := `
		UPDATE accounts SET name = $2, crn = $3, delivery_method = $4, memo = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		a.ID, a.Name, a.CRN, a.DeliveryMethod, a.Memo, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM contacts WHERE account_id = $1`, a.ID); err != nil {
		return fmt.Errorf("replace contacts: %w", err)
	}
	return r.insertContacts(a.ID, a.Contacts)
}

// DeleteByIDs borra clientes por ID y devuelve cuántos se borraron.
func (r *AccountRepo) DeleteByIDs(ids []string) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM accounts WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete accounts: %w", err)
	}
	return tag.RowsAffected(), nil
}
