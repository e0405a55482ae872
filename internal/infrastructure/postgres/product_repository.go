package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable
// con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, account_id, name, thickness, length, width,
	ext_color, ext_is_antistatic, ext_memo,
	print_side, print_front_color_count, print_front_color,
	print_back_color_count, print_back_color, print_memo,
	pack_material, pack_unit, delivery_method, memo,
	created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.AccountID, &p.Name, &p.Thickness, &p.Length, &p.Width,
		&p.ExtColor, &p.ExtIsAntistatic, &p.ExtMemo,
		&p.PrintSide, &p.PrintFrontColorCount, &p.PrintFrontColor,
		&p.PrintBackColorCount, &p.PrintBackColor, &p.PrintMemo,
		&p.PackMaterial, &p.PackUnit, &p.DeliveryMethod, &p.Memo,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.AccountID, p.Name, p.Thickness, p.Length, p.Width,
		p.ExtColor, p.ExtIsAntistatic, p.ExtMemo,
		p.PrintSide, p.PrintFrontColorCount, p.PrintFrontColor,
		p.PrintBackColorCount, p.PrintBackColor, p.PrintMemo,
		p.PackMaterial, p.PackUnit, p.DeliveryMethod, p.Memo,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// FindBySpec resuelve un producto por cliente + nombre + medidas exactas, o
// nil si no hay match.
func (r *ProductRepo) FindBySpec(accountName, name string, thickness, length, width decimal.Decimal) (*entity.Product, error) {
	query := `
		SELECT p.id, p.account_id, p.name, p.thickness, p.length, p.width,
			p.ext_color, p.ext_is_antistatic, p.ext_memo,
			p.print_side, p.print_front_color_count, p.print_front_color,
			p.print_back_color_count, p.print_back_color, p.print_memo,
			p.pack_material, p.pack_unit, p.delivery_method, p.memo,
			p.created_at, p.updated_at
		FROM products p
		JOIN accounts a ON a.id = p.account_id
		WHERE a.name = $1 AND p.name = $2
			AND p.thickness = $3 AND p.length = $4 AND p.width = $5`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, accountName, name, thickness, length, width))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product by spec: %w", err)
	}
	return p, nil
}

// List lista productos filtrando por cliente y/o nombre parcial.
func (r *ProductRepo) List(f repository.ProductFilter) ([]*entity.Product, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if f.AccountName != "" {
		args = append(args, "%"+f.AccountName+"%")
		where += fmt.Sprintf(` AND a.name ILIKE $%d`, len(args))
	}
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		where += fmt.Sprintf(` AND p.name ILIKE $%d`, len(args))
	}
	from := ` FROM products p JOIN accounts a ON a.id = p.account_id`

	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*)`+from+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `
		SELECT p.id, p.account_id, p.name, p.thickness, p.length, p.width,
			p.ext_color, p.ext_is_antistatic, p.ext_memo,
			p.print_side, p.print_front_color_count, p.print_front_color,
			p.print_back_color_count, p.print_back_color, p.print_memo,
			p.pack_material, p.pack_unit, p.delivery_method, p.memo,
			p.created_at, p.updated_at` + from + where + ` ORDER BY a.name ASC, p.name ASC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
		args = append(args, f.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, count, rows.Err()
}

// Update actualiza un producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET
			name = $2, thickness = $3, length = $4, width = $5,
			ext_color = $6, ext_is_antistatic = $7, ext_memo = $8,
			print_side = $9, print_front_color_count = $10, print_front_color = $11,
			print_back_color_count = $12, print_back_color = $13, print_memo = $14,
			pack_material = $15, pack_unit = $16, delivery_method = $17, memo = $18,
			updated_at = $19
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Thickness, p.Length, p.Width,
		p.ExtColor, p.ExtIsAntistatic, p.ExtMemo,
		p.PrintSide, p.PrintFrontColorCount, p.PrintFrontColor,
		p.PrintBackColorCount, p.PrintBackColor, p.PrintMemo,
		p.PackMaterial, p.PackUnit, p.DeliveryMethod, p.Memo,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DeleteByIDs borra productos por ID y devuelve cuántos se borraron.
func (r *ProductRepo) DeleteByIDs(ids []string) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return tag.RowsAffected(), nil
}
