// Package workorder contiene la lógica pura de identificadores de órdenes de
// trabajo: derivación del período año-mes y formato {período}-{seq}.
package workorder

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodLayout formato del período de secuencia (año-mes).
const PeriodLayout = "2006-01"

// DateLayout formato de fecha usado en consultas y rangos.
const DateLayout = "2006-01-02"

// Period deriva el período año-mes de la fecha de pedido.
// Si orderedAt es cero se usa la hora actual.
func Period(orderedAt time.Time) string {
	if orderedAt.IsZero() {
		orderedAt = time.Now()
	}
	return orderedAt.Format(PeriodLayout)
}

// FormatID arma el identificador de negocio {período}-{seq} con seq a 3 dígitos.
func FormatID(period string, seq int) string {
	return fmt.Sprintf("%s-%03d", period, seq)
}

// ParseSeq extrae el componente numérico final de un ID provisto por el
// cliente (importación/migración). Un ID sin sufijo numérico vale 1.
func ParseSeq(id string) int {
	parts := strings.Split(id, "-")
	if len(parts) == 0 {
		return 1
	}
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// DefaultOrderedAtRange rango de consulta por defecto para listados de
// órdenes: últimos 14 días.
func DefaultOrderedAtRange(now time.Time) (from, to time.Time) {
	return now.AddDate(0, 0, -14), now
}
