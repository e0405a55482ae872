package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

func sampleWorkOrder() (*entity.WorkOrder, *entity.Product) {
	orderedAt := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	product := &entity.Product{
		ID:        "prod-1",
		Name:      "Bolsa 20x30",
		Thickness: decimal.RequireFromString("0.050"),
		Length:    decimal.RequireFromString("30.00"),
		Width:     decimal.RequireFromString("20.00"),
		PrintSide: entity.PrintSideSingle,
	}
	wo := &entity.WorkOrder{
		ID:            "2024-03-001",
		OrderedAt:     orderedAt,
		DeliverBy:     orderedAt.AddDate(0, 0, 10),
		OrderQuantity: 5000,
		IsUrgent:      true,
		Status:        entity.WorkOrderPrinting,
		Account:       &entity.Account{ID: "acc-1", Name: "Plásticos del Sur"},
		Product:       product,
		WorkMemo:      "Verificar tono del pantone antes de tirar",
	}
	return wo, product
}

func TestGenerarHojaDeProduccion_DevuelveBytesPDF(t *testing.T) {
	wo, product := sampleWorkOrder()

	out, err := NewWorkOrderSheetGenerator().GenerateWorkOrderSheet(wo, product)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "la salida debe ser un documento PDF")
}

func TestGenerarHojaDeProduccion_SinProducto(t *testing.T) {
	wo, _ := sampleWorkOrder()
	wo.Product = nil

	// Sin relaciones cargadas la hoja sale con placeholders, no con error.
	out, err := NewWorkOrderSheetGenerator().GenerateWorkOrderSheet(wo, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
