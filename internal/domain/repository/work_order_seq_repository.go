package repository

import "github.com/jhoicas/Fabrica-api/internal/domain/entity"

// WorkOrderSeqRepository puerto del contador de secuencia por período.
// La corrección bajo concurrencia descansa por completo en la atomicidad de
// Next y Decrement en la capa de almacenamiento (un solo read-modify-write),
// no en locking de aplicación.
type WorkOrderSeqRepository interface {
	// Next hace upsert atómico del contador del período: lo crea en 1 si no
	// existe o lo incrementa en 1, y devuelve el valor resultante. Dos
	// llamadas concurrentes del mismo período jamás reciben el mismo valor.
	Next(period string) (int, error)
	// Advance crea el contador en 1 si no existe; si existe y su seq es menor
	// que seq, lo sube hasta seq. Usado cuando el ID viene provisto por el
	// cliente, para que los IDs generados a futuro no coincidan.
	Advance(period string, seq int) error
	// Decrement resta 1 al contador (piso 0) y devuelve el valor resultante.
	// Si el período no tiene contador devuelve domain.ErrSeqNotFound.
	Decrement(period string) (int, error)
	Get(period string) (*entity.WorkOrderSeq, error)
}
