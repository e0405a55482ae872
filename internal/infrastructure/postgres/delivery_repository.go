package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación de DeliveryRepository sobre PostgreSQL (usable
// con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

const deliveryColumns = `
	d.id, d.product_id, COALESCE(d.work_order_id, ''), d.date, d.method,
	d.quantity, d.is_delivered, d.memo, d.created_at, d.updated_at, p.name`

func scanDelivery(row pgx.Row) (*entity.Delivery, error) {
	var (
		d           entity.Delivery
		productName string
	)
	err := row.Scan(
		&d.ID, &d.ProductID, &d.WorkOrderID, &d.Date, &d.Method,
		&d.Quantity, &d.IsDelivered, &d.Memo, &d.CreatedAt, &d.UpdatedAt, &productName,
	)
	if err != nil {
		return nil, err
	}
	d.Product = &entity.Product{ID: d.ProductID, Name: productName}
	return &d, nil
}

// Create persiste una entrega.
func (r *DeliveryRepo) Create(d *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (id, product_id, work_order_id, date, method, quantity, is_delivered, memo, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.ProductID, d.WorkOrderID, d.Date, d.Method,
		d.Quantity, d.IsDelivered, d.Memo, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create delivery: %w", err)
	}
	return nil
}

// GetByID obtiene una entrega con su producto, o nil si no existe.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries d
		JOIN products p ON p.id = d.product_id
		WHERE d.id = $1`
	d, err := scanDelivery(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return d, nil
}

// ListByDate lista entregas de un día calendario, opcionalmente por método.
func (r *DeliveryRepo) ListByDate(date time.Time, method entity.DeliveryMethod, limit, offset int) ([]*entity.Delivery, int, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	where := ` WHERE d.date >= $1 AND d.date < $2`
	args := []any{dayStart, dayEnd}
	if method != "" {
		args = append(args, method)
		where += fmt.Sprintf(` AND d.method = $%d`, len(args))
	}
	from := ` FROM deliveries d JOIN products p ON p.id = d.product_id`

	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*)`+from+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count deliveries: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + deliveryColumns + from + where +
		fmt.Sprintf(` ORDER BY d.date ASC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Delivery, 0)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan delivery: %w", err)
		}
		out = append(out, d)
	}
	return out, count, rows.Err()
}

// Update actualiza una entrega.
func (r *DeliveryRepo) Update(d *entity.Delivery) error {
	query := `
		UPDATE deliveries SET date = $2, method = $3, quantity = $4, is_delivered = $5, memo = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		d.ID, d.Date, d.Method, d.Quantity, d.IsDelivered, d.Memo, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByIDs borra entregas por ID y devuelve cuántas se borraron.
func (r *DeliveryRepo) DeleteByIDs(ids []string) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM deliveries WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete deliveries: %w", err)
	}
	return tag.RowsAffected(), nil
}
