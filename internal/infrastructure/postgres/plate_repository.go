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

var _ repository.PlateRepository = (*PlateRepo)(nil)

// PlateRepo implementación de PlateRepository sobre PostgreSQL (usable con
// pool o tx). Code lo asigna la BD (serial); las asociaciones a productos
// viven en plate_products y se reemplazan en bloque.
type PlateRepo struct {
	q Querier
}

// NewPlateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlateRepository(q Querier) *PlateRepo {
	return &PlateRepo{q: q}
}

// Create persiste una plancha; la BD asigna el código y lo deja en p.Code.
func (r *PlateRepo) Create(p *entity.Plate) error {
	query := `
		INSERT INTO plates (id, round, length, name, material, location, memo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING code`
	err := r.q.QueryRow(context.Background(), query,
		p.ID, p.Round, p.Length, p.Name, p.Material, p.Location, p.Memo, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.Code)
	if err != nil {
		return fmt.Errorf("create plate: %w", err)
	}
	return r.replaceProducts(p.ID, p.ProductIDs)
}

func (r *PlateRepo) replaceProducts(plateID string, productIDs []string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM plate_products WHERE plate_id = $1`, plateID); err != nil {
		return fmt.Errorf("clear plate products: %w", err)
	}
	for _, productID := range productIDs {
		query := `INSERT INTO plate_products (plate_id, product_id) VALUES ($1, $2)`
		if _, err := r.q.Exec(context.Background(), query, plateID, productID); err != nil {
			return fmt.Errorf("link plate product: %w", err)
		}
	}
	return nil
}

func (r *PlateRepo) loadProductIDs(plateID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id FROM plate_products WHERE plate_id = $1`, plateID)
	if err != nil {
		return nil, fmt.Errorf("load plate products: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan plate product: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// GetByID obtiene una plancha con sus productos asociados, o nil si no existe.
func (r *PlateRepo) GetByID(id string) (*entity.Plate, error) {
	query := `
		SELECT id, code, round, length, name, material, location, memo, created_at, updated_at
		FROM plates WHERE id = $1`
	var p entity.Plate
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Code, &p.Round, &p.Length, &p.Name, &p.Material, &p.Location, &p.Memo,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plate: %w", err)
	}
	p.ProductIDs, err = r.loadProductIDs(p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista planchas por código exacto, cliente, producto o nombre parcial.
func (r *PlateRepo) List(f repository.PlateFilter) ([]*entity.Plate, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if f.Code > 0 {
		args = append(args, f.Code)
		where += fmt.Sprintf(` AND pl.code = $%d`, len(args))
	}
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		where += fmt.Sprintf(` AND pl.name ILIKE $%d`, len(args))
	}
	if f.AccountName != "" || f.ProductName != "" {
		sub := `SELECT 1 FROM plate_products pp
			JOIN products p ON p.id = pp.product_id
			JOIN accounts a ON a.id = p.account_id
			WHERE pp.plate_id = pl.id`
		if f.AccountName != "" {
			args = append(args, "%"+f.AccountName+"%")
			sub += fmt.Sprintf(` AND a.name ILIKE $%d`, len(args))
		}
		if f.ProductName != "" {
			args = append(args, "%"+f.ProductName+"%")
			sub += fmt.Sprintf(` AND p.name ILIKE $%d`, len(args))
		}
		where += ` AND EXISTS (` + sub + `)`
	}

	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM plates pl`+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count plates: %w", err)
	}

	query := `
		SELECT pl.id, pl.code, pl.round, pl.length, pl.name, pl.material, pl.location, pl.memo,
			pl.created_at, pl.updated_at
		FROM plates pl` + where + ` ORDER BY pl.code DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
		args = append(args, f.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list plates: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Plate, 0)
	for rows.Next() {
		var p entity.Plate
		if err := rows.Scan(&p.ID, &p.Code, &p.Round, &p.Length, &p.Name, &p.Material, &p.Location, &p.Memo,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan plate: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, p := range out {
		p.ProductIDs, err = r.loadProductIDs(p.ID)
		if err != nil {
			return nil, 0, err
		}
	}
	return out, count, nil
}

// Update actualiza una plancha y reemplaza sus asociaciones.
func (r *PlateRepo) Update(p *entity.Plate) error {
	query := `
		UPDATE plates SET round = $2, length = $3, name = $4, material = $5,
			location = $6, memo = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Round, p.Length, p.Name, p.Material, p.Location, p.Memo, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update plate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return r.replaceProducts(p.ID, p.ProductIDs)
}

// DeleteByIDs borra planchas por ID y devuelve cuántas se borraron.
func (r *PlateRepo) DeleteByIDs(ids []string) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM plates WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete plates: %w", err)
	}
	return tag.RowsAffected(), nil
}
