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

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository sobre PostgreSQL
// (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

const workOrderColumns = `
	w.id, w.account_id, w.product_id, w.ordered_at, w.deliver_by,
	w.order_quantity, w.is_urgent, w.should_be_punctual,
	w.plate_status, w.is_plate_ready, w.delivery_method,
	w.work_memo, w.delivery_memo, w.status,
	w.completed_quantity, w.completed_at, w.delivered_quantity, w.delivered_at,
	w.created_at, w.updated_at,
	a.name, p.name`

func scanWorkOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var (
		wo          entity.WorkOrder
		accountName *string
		productName *string
	)
	err := row.Scan(
		&wo.ID, &wo.AccountID, &wo.ProductID, &wo.OrderedAt, &wo.DeliverBy,
		&wo.OrderQuantity, &wo.IsUrgent, &wo.ShouldBePunctual,
		&wo.PlateStatus, &wo.IsPlateReady, &wo.DeliveryMethod,
		&wo.WorkMemo, &wo.DeliveryMemo, &wo.Status,
		&wo.CompletedQuantity, &wo.CompletedAt, &wo.DeliveredQuantity, &wo.DeliveredAt,
		&wo.CreatedAt, &wo.UpdatedAt,
		&accountName, &productName,
	)
	if err != nil {
		return nil, err
	}
	if accountName != nil {
		wo.Account = &entity.Account{ID: wo.AccountID, Name: *accountName}
	}
	if productName != nil {
		wo.Product = &entity.Product{ID: wo.ProductID, Name: *productName}
	}
	return &wo, nil
}

// Create persiste una orden de trabajo. Un ID repetido (colisión de secuencia
// o ID importado dos veces) devuelve ErrDuplicate.
func (r *WorkOrderRepo) Create(wo *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (
			id, account_id, product_id, ordered_at, deliver_by,
			order_quantity, is_urgent, should_be_punctual,
			plate_status, is_plate_ready, delivery_method,
			work_memo, delivery_memo, status,
			completed_quantity, completed_at, delivered_quantity, delivered_at,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`
	_, err := r.q.Exec(context.Background(), query,
		wo.ID, wo.AccountID, wo.ProductID, wo.OrderedAt, wo.DeliverBy,
		wo.OrderQuantity, wo.IsUrgent, wo.ShouldBePunctual,
		wo.PlateStatus, wo.IsPlateReady, wo.DeliveryMethod,
		wo.WorkMemo, wo.DeliveryMemo, wo.Status,
		wo.CompletedQuantity, wo.CompletedAt, wo.DeliveredQuantity, wo.DeliveredAt,
		wo.CreatedAt, wo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create work order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con el nombre del cliente y del producto.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `
		SELECT ` + workOrderColumns + `
		FROM work_orders w
		LEFT JOIN accounts a ON a.id = w.account_id
		LEFT JOIN products p ON p.id = w.product_id
		WHERE w.id = $1`
	wo, err := scanWorkOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return wo, nil
}

func workOrderWhere(f repository.WorkOrderFilter) (string, []any) {
	where := ` WHERE TRUE`
	var args []any
	if !f.OrderedFrom.IsZero() {
		args = append(args, f.OrderedFrom)
		where += fmt.Sprintf(` AND w.ordered_at >= $%d`, len(args))
	}
	if !f.OrderedTo.IsZero() {
		args = append(args, f.OrderedTo)
		where += fmt.Sprintf(` AND w.ordered_at <= $%d`, len(args))
	}
	if !f.IncludeCompleted {
		where += ` AND w.completed_at IS NULL`
	}
	if f.NeedPlate {
		where += ` AND w.is_plate_ready = FALSE`
	}
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		where += fmt.Sprintf(` AND w.product_id = $%d`, len(args))
	}
	if f.AccountName != "" {
		args = append(args, "%"+f.AccountName+"%")
		where += fmt.Sprintf(` AND a.name ILIKE $%d`, len(args))
	}
	if f.ProductName != "" {
		args = append(args, "%"+f.ProductName+"%")
		where += fmt.Sprintf(` AND p.name ILIKE $%d`, len(args))
	}
	return where, args
}

const workOrderFrom = `
	FROM work_orders w
	LEFT JOIN accounts a ON a.id = w.account_id
	LEFT JOIN products p ON p.id = w.product_id`

// List devuelve la página y el total que matchea el filtro, del pedido más
// reciente al más antiguo. El ID solo desempata dentro del mismo instante:
// como texto no ordena cronológicamente cuando la secuencia pasa de 999.
func (r *WorkOrderRepo) List(f repository.WorkOrderFilter) ([]*entity.WorkOrder, int, error) {
	where, args := workOrderWhere(f)

	var count int
	countQuery := `SELECT COUNT(*)` + workOrderFrom + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count work orders: %w", err)
	}

	query := `SELECT ` + workOrderColumns + workOrderFrom + where + ` ORDER BY w.ordered_at DESC, w.id DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
		args = append(args, f.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.WorkOrder, 0)
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan work order: %w", err)
		}
		out = append(out, wo)
	}
	return out, count, rows.Err()
}

// ListAll devuelve todas las órdenes que matchean el filtro, sin paginar.
func (r *WorkOrderRepo) ListAll(f repository.WorkOrderFilter) ([]*entity.WorkOrder, error) {
	f.Limit = 0
	rows, _, err := r.List(f)
	return rows, err
}

// Update actualiza los campos editables de una orden.
func (r *WorkOrderRepo) Update(wo *entity.WorkOrder) error {
	query := `
		UPDATE work_orders SET
			deliver_by = $2, order_quantity = $3, is_urgent = $4,
			should_be_punctual = $5, plate_status = $6, is_plate_ready = $7,
			delivery_method = $8, work_memo = $9, delivery_memo = $10,
			status = $11, delivered_quantity = $12, delivered_at = $13,
			updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		wo.ID, wo.DeliverBy, wo.OrderQuantity, wo.IsUrgent,
		wo.ShouldBePunctual, wo.PlateStatus, wo.IsPlateReady,
		wo.DeliveryMethod, wo.WorkMemo, wo.DeliveryMemo,
		wo.Status, wo.DeliveredQuantity, wo.DeliveredAt,
		wo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWorkOrderNotFound
	}
	return nil
}

// UpdateCompletion actualiza solo los campos de completado.
func (r *WorkOrderRepo) UpdateCompletion(id string, completedQuantity int64, completedAt *time.Time, status entity.WorkOrderStatus) error {
	query := `
		UPDATE work_orders SET
			completed_quantity = $2, completed_at = $3, status = $4, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, completedQuantity, completedAt, status)
	if err != nil {
		return fmt.Errorf("update work order completion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWorkOrderNotFound
	}
	return nil
}

// DeleteByIDs borra órdenes por ID y devuelve cuántas se borraron.
func (r *WorkOrderRepo) DeleteByIDs(ids []string) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM work_orders WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete work orders: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListOpenByDeadline devuelve órdenes sin completar con fecha límite hasta deadline.
func (r *WorkOrderRepo) ListOpenByDeadline(deadline time.Time) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + workOrderFrom + `
		WHERE w.completed_at IS NULL AND w.deliver_by <= $1
		ORDER BY w.deliver_by ASC`
	rows, err := r.q.Query(context.Background(), query, deadline)
	if err != nil {
		return nil, fmt.Errorf("list work orders by deadline: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.WorkOrder, 0)
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		out = append(out, wo)
	}
	return out, rows.Err()
}

// CountByStatus cuenta órdenes por estado en el rango de pedido dado.
func (r *WorkOrderRepo) CountByStatus(from, to time.Time) (map[entity.WorkOrderStatus]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM work_orders
		WHERE ordered_at >= $1 AND ordered_at <= $2
		GROUP BY status`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("count work orders by status: %w", err)
	}
	defer rows.Close()

	out := make(map[entity.WorkOrderStatus]int)
	for rows.Next() {
		var (
			status entity.WorkOrderStatus
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = n
	}
	return out, rows.Err()
}

// CountByPrintSide cuenta órdenes por caras de impresión del producto en el
// rango de pedido dado (carga de trabajo del área de impresión).
func (r *WorkOrderRepo) CountByPrintSide(from, to time.Time) (map[entity.PrintSide]int, error) {
	query := `
		SELECT p.print_side, COUNT(*)
		FROM work_orders w
		JOIN products p ON p.id = w.product_id
		WHERE w.ordered_at >= $1 AND w.ordered_at <= $2
		GROUP BY p.print_side`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("count work orders by print side: %w", err)
	}
	defer rows.Close()

	out := make(map[entity.PrintSide]int)
	for rows.Next() {
		var (
			side entity.PrintSide
			n    int
		)
		if err := rows.Scan(&side, &n); err != nil {
			return nil, fmt.Errorf("scan print side count: %w", err)
		}
		out[side] = n
	}
	return out, rows.Err()
}
