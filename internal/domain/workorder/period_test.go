package workorder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Fabrica-api/internal/domain/workorder"
)

func TestPeriod_DerivaAnioMes(t *testing.T) {
	d := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03", workorder.Period(d))
}

func TestPeriod_FechaCero_UsaAhora(t *testing.T) {
	got := workorder.Period(time.Time{})
	assert.Equal(t, time.Now().Format("2006-01"), got)
}

func TestFormatID_RellenaATresDigitos(t *testing.T) {
	assert.Equal(t, "2024-03-001", workorder.FormatID("2024-03", 1))
	assert.Equal(t, "2024-03-042", workorder.FormatID("2024-03", 42))
	// Más de tres dígitos no se trunca
	assert.Equal(t, "2024-03-1042", workorder.FormatID("2024-03", 1042))
}

func TestParseSeq_TomaElSegmentoFinal(t *testing.T) {
	assert.Equal(t, 50, workorder.ParseSeq("2024-03-050"))
	assert.Equal(t, 7, workorder.ParseSeq("2024-03-007"))
	// Prefijos arbitrarios de migraciones antiguas
	assert.Equal(t, 12, workorder.ParseSeq("LEGACY-12"))
}

func TestParseSeq_SinSufijoNumerico_ValeUno(t *testing.T) {
	assert.Equal(t, 1, workorder.ParseSeq("sin-numero-final-x"))
	assert.Equal(t, 1, workorder.ParseSeq(""))
}

func TestDefaultOrderedAtRange_CatorceDias(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	from, to := workorder.DefaultOrderedAtRange(now)
	assert.Equal(t, now, to)
	assert.Equal(t, now.AddDate(0, 0, -14), from)
}
