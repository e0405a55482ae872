package entity

// WorkOrderSeq contador de secuencia por período (año-mes, ej. "2024-03").
// Se crea perezosamente en la primera asignación del período, se incrementa en
// cada asignación y se decrementa (nunca bajo 0) al compensar una creación
// fallida. Nunca se borra.
type WorkOrderSeq struct {
	ID  string // período año-mes
	Seq int
}
