package workorder

import (
	"time"

	domainwo "github.com/jhoicas/Fabrica-api/internal/domain/workorder"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

// SequenceAllocator asigna identificadores de órdenes de trabajo legibles y
// monotónicamente crecientes por período ({período}-{seq}), con camino
// explícito de rollback cuando la creación que consumió el ID no llega a
// confirmarse. El contador por período es la única fuente de verdad del
// espacio de IDs generados; su mutación está serializada en el storage.
type SequenceAllocator struct {
	seqs repository.WorkOrderSeqRepository
}

// NewSequenceAllocator construye el asignador.
func NewSequenceAllocator(seqs repository.WorkOrderSeqRepository) *SequenceAllocator {
	return &SequenceAllocator{seqs: seqs}
}

// Allocate devuelve el ID para una orden nueva.
//
// Sin suppliedID: upsert atómico del contador del período (crea en 1 o
// incrementa) y formatea {período}-{seq:03d}. Dos llamadas concurrentes del
// mismo período nunca reciben el mismo valor.
//
// Con suppliedID (importación/migración): se devuelve tal cual, y el contador
// del período avanza hasta el componente numérico final del ID si lo supera,
// para que los IDs generados a futuro jamás coincidan con los importados. Si
// el período aún no tiene contador se crea en 1 sin adoptar el valor provisto.
func (a *SequenceAllocator) Allocate(orderedAt time.Time, suppliedID string) (string, error) {
	period := domainwo.Period(orderedAt)

	if suppliedID == "" {
		seq, err := a.seqs.Next(period)
		if err != nil {
			return "", err
		}
		return domainwo.FormatID(period, seq), nil
	}

	if err := a.seqs.Advance(period, domainwo.ParseSeq(suppliedID)); err != nil {
		return "", err
	}
	return suppliedID, nil
}

// Rollback decrementa el contador del período (piso 0) tras una creación
// fallida que consumió un ID generado, para mantener el contador alineado con
// las filas realmente confirmadas. Devuelve el ID resultante solo a título
// informativo: el ID liberado no se reutiliza automáticamente y los huecos
// frente a asignaciones concurrentes son posibles y aceptables.
func (a *SequenceAllocator) Rollback(orderedAt time.Time) (string, error) {
	period := domainwo.Period(orderedAt)
	seq, err := a.seqs.Decrement(period)
	if err != nil {
		return "", err
	}
	return domainwo.FormatID(period, seq), nil
}
