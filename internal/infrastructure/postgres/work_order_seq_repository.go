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

var _ repository.WorkOrderSeqRepository = (*WorkOrderSeqRepo)(nil)

// WorkOrderSeqRepo contador de secuencia por período sobre PostgreSQL
// (usable con pool o tx). Todas las mutaciones son sentencias únicas: la BD
// serializa los read-modify-write y dos llamadas concurrentes jamás ven el
// mismo valor.
type WorkOrderSeqRepo struct {
	q Querier
}

// NewWorkOrderSeqRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderSeqRepository(q Querier) *WorkOrderSeqRepo {
	return &WorkOrderSeqRepo{q: q}
}

// Next incrementa y devuelve el contador del período, creándolo en 1 si no
// existe. Upsert atómico: crea-o-incrementa en una sola sentencia.
func (r *WorkOrderSeqRepo) Next(period string) (int, error) {
	query := `
		INSERT INTO work_order_seq (id, seq) VALUES ($1, 1)
		ON CONFLICT (id) DO UPDATE SET seq = work_order_seq.seq + 1
		RETURNING seq`
	var seq int
	if err := r.q.QueryRow(context.Background(), query, period).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next work order seq: %w", err)
	}
	return seq, nil
}

// Advance crea el contador en 1 si no existe; si existe y está por debajo de
// seq, lo sube hasta seq. Nunca lo retrocede.
func (r *WorkOrderSeqRepo) Advance(period string, seq int) error {
	query := `
		INSERT INTO work_order_seq (id, seq) VALUES ($1, 1)
		ON CONFLICT (id) DO UPDATE SET seq = GREATEST(work_order_seq.seq, $2)`
	if _, err := r.q.Exec(context.Background(), query, period, seq); err != nil {
		return fmt.Errorf("advance work order seq: %w", err)
	}
	return nil
}

// Decrement resta 1 al contador del período con piso en 0 y devuelve el valor
// resultante. Sin contador para el período devuelve ErrSeqNotFound.
func (r *WorkOrderSeqRepo) Decrement(period string) (int, error) {
	query := `
		UPDATE work_order_seq SET seq = GREATEST(seq - 1, 0)
		WHERE id = $1
		RETURNING seq`
	var seq int
	err := r.q.QueryRow(context.Background(), query, period).Scan(&seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrSeqNotFound
		}
		return 0, fmt.Errorf("decrement work order seq: %w", err)
	}
	return seq, nil
}

// Get devuelve el contador del período, o nil si no existe.
func (r *WorkOrderSeqRepo) Get(period string) (*entity.WorkOrderSeq, error) {
	query := `SELECT id, seq FROM work_order_seq WHERE id = $1`
	var s entity.WorkOrderSeq
	err := r.q.QueryRow(context.Background(), query, period).Scan(&s.ID, &s.Seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order seq: %w", err)
	}
	return &s, nil
}
