package workorder_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appwo "github.com/jhoicas/Fabrica-api/internal/application/workorder"
	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

type completeFixture struct {
	store *memStore
	uc    *appwo.UseCase
}

func newCompleteFixture() *completeFixture {
	store := newMemStore()
	uc := appwo.NewUseCase(
		&fakeTxRunner{s: store},
		appwo.NewSequenceAllocator(newFakeSeqRepo()),
		&fakeWorkOrderRepo{store},
		&fakeProductRepo{store},
		testLogger(),
	)
	return &completeFixture{store: store, uc: uc}
}

func (f *completeFixture) seedOrder(id, productID string, completed int64) {
	f.store.products[productID] = &entity.Product{ID: productID, AccountID: "acc-1", Name: "Bolsa 20x30"}
	f.store.workOrders[id] = &entity.WorkOrder{
		ID:                id,
		AccountID:         "acc-1",
		ProductID:         productID,
		OrderedAt:         marzo,
		OrderQuantity:     1000,
		Status:            entity.WorkOrderCutting,
		CompletedQuantity: completed,
	}
}

func (f *completeFixture) stockOf(productID string) (*entity.Stock, []*entity.StockHistory) {
	for _, st := range f.store.stocks {
		if st.ProductID == productID {
			return st, f.store.histories[st.ID]
		}
	}
	return nil, nil
}

func TestCompletar_AsientaDeltaYActualizaOrden(t *testing.T) {
	f := newCompleteFixture()
	f.seedOrder("2024-03-001", "prod-1", 0)
	completedAt := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)

	res := f.uc.Complete(context.Background(), []dto.CompleteWorkOrderRequest{{
		ID:                "2024-03-001",
		CompletedQuantity: 300,
		CompletedAt:       &completedAt,
		Status:            entity.WorkOrderCompleted,
	}})

	require.Empty(t, res.Failed)
	require.Len(t, res.Updated, 1)
	assert.Equal(t, int64(300), res.Updated[0].CompletedQuantity)
	assert.Equal(t, entity.WorkOrderCompleted, res.Updated[0].Status)
	require.NotNil(t, res.Updated[0].CompletedAt)
	assert.True(t, completedAt.Equal(*res.Updated[0].CompletedAt))

	stock, hist := f.stockOf("prod-1")
	require.NotNil(t, stock, "el primer completado crea el stock del producto")
	assert.Equal(t, int64(300), stock.Balance)
	require.Len(t, hist, 2, "asiento semilla CREATED + asiento MANUFACTURED")
	assert.Equal(t, entity.StockHistoryCreated, hist[0].Type)
	assert.Equal(t, int64(0), hist[0].Balance)
	assert.Equal(t, entity.StockHistoryManufactured, hist[1].Type)
	assert.Equal(t, int64(300), hist[1].Quantity)
	assert.Equal(t, int64(300), hist[1].Balance)
}

func TestCompletar_SemillaAnteriorAlPrimerAsiento(t *testing.T) {
	f := newCompleteFixture()
	f.seedOrder("2024-03-001", "prod-1", 0)
	now := time.Now()

	res := f.uc.Complete(context.Background(), []dto.CompleteWorkOrderRequest{
		{ID: "2024-03-001", CompletedQuantity: 300, CompletedAt: &now, Status: entity.WorkOrderCutting},
	})
	require.Empty(t, res.Failed)

	_, hist := f.stockOf("prod-1")
	require.Len(t, hist, 2)
	// La semilla y el MANUFACTURED nacen en la misma transacción: sus
	// timestamps deben ser estrictamente crecientes para que la cola del
	// libro no dependa de un desempate por ID aleatorio.
	assert.True(t, hist[0].CreatedAt.Before(hist[1].CreatedAt),
		"el asiento semilla debe quedar estrictamente antes del que lo sigue")

	// El siguiente completado encadena desde la cola real, no desde la semilla.
	res = f.uc.Complete(context.Background(), []dto.CompleteWorkOrderRequest{
		{ID: "2024-03-001", CompletedQuantity: 500, CompletedAt: &now, Status: entity.WorkOrderCompleted},
	})
	require.Empty(t, res.Failed)

	stock, hist := f.stockOf("prod-1")
	require.Len(t, hist, 3)
	assert.Equal(t, int64(200), hist[2].Quantity)
	assert.Equal(t, int64(500), hist[2].Balance)
	assert.Equal(t, int64(500), stock.Balance)
}

func TestCompletar_DeltaContraAcumulado(t *testing.T) {
	f := newCompleteFixture()
	f.seedOrder("2024-03-001", "prod-1", 0)
	now := time.Now()

	// Primer reporte: acumulado 300.
	res := f.uc.Complete(context.Background(), []dto.CompleteWorkOrderRequest{
		{ID: "2024-03-001", CompletedQuantity: 300, CompletedAt: &now, Status: entity.WorkOrderCutting},
	})
	require.Empty(t, res.Failed)

	// Segundo reporte: acumulado 500 -> delta 200, no 500.
	res = f.uc.Complete(context.Background(), []dto.CompleteWorkOrderRequest{
		{ID: "2024-03-001", CompletedQuantity: 500, CompletedAt: &now, Status: entity.WorkOrderCompleted},
	})
	require.Empty(t, res.Failed)

	stock, hist := f.stockOf("prod-1")
	assert.Equal(t, int64(500), stock.Balance)
	last := hist[len(hist)-1]
	assert.Equal(t, int64(200), last.Quantity)
	assert.Equal(t, int64(500), last.Balance)
}

func TestCompletar_DeltaNegativo_Correccion(t *testing.T) {
	f := newCompleteFixture()
	f.seedOrder("2024-03-001", "prod-1", 500)
	// Saldo existente alineado con el acumulado previo.
	f.store.stocks["st-1"] = &entity.Stock{ID: "st-1", ProductID: "prod-1", Balance: 500}
	f.store.histories["st-1"] = []*entity.StockHistory{
		{ID: "h-1", StockID: "st-1", Type: entity.StockHistoryManufactured, Quantity: 500, Balance: 500},
	}
	now := time.Now()

	// Corrección a la baja: acumulado real era 450.
	res := f.uc.Complete(context.Background(), []dto.CompleteWorkOrderRequest{
		{ID: "2024-03-001", CompletedQuantity: 450, CompletedAt: &now, Status: entity.WorkOrderCompleted},
	})
	require.Empty(t, res.Failed)

	stock, hist := f.stockOf("prod-1")
	assert.Equal(t, int64(450), stock.Balance)
	last := hist[len(hist)-1]
	assert.Equal(t, entity.StockHistoryManufactured, last.Type)
	assert.Equal(t, int64(-50), last.Quantity, "el asiento de corrección lleva delta negativo")
	assert.Equal(t, int64(450), last.Balance)
}

func TestCompletar_DeltaCero_SinAsientoNuevo(t *testing.T) {
	f := newCompleteFixture()
	f.seedOrder("2024-03-001", "prod-1", 300)
	f.store.stocks["st-1"] = &entity.Stock{ID: "st-1", ProductID: "prod-1", Balance: 300}
	f.store.histories["st-1"] = []*entity.StockHistory{
		{ID: "h-1", StockID: "st-1", Type: entity.StockHistoryManufactured, Quantity: 300, Balance: 300},
	}
	now := time.Now()

	res := f.uc.Complete(context.Background(), []dto.CompleteWorkOrderRequest{
		{ID: "2024-03-001", CompletedQuantity: 300, CompletedAt: &now, Status: entity.WorkOrderCompleted},
	})

	require.Empty(t, res.Failed)
	require.Len(t, res.Updated, 1)

	_, hist := f.stockOf("prod-1")
	assert.Len(t, hist, 1, "delta cero no genera asiento")
	// Aunque no se mueva stock, la orden sí se actualiza.
	assert.Equal(t, entity.WorkOrderCompleted, res.Updated[0].Status)
	assert.NotNil(t, res.Updated[0].CompletedAt)
}

func TestCompletar_InvarianteDelLibro(t *testing.T) {
	f := newCompleteFixture()
	f.seedOrder("2024-03-001", "prod-1", 0)
	now := time.Now()

	for _, q := range []int64{100, 250, 250, 400} {
		res := f.uc.Complete(context.Background(), []dto.CompleteWorkOrderRequest{
			{ID: "2024-03-001", CompletedQuantity: q, CompletedAt: &now, Status: entity.WorkOrderCutting},
		})
		require.Empty(t, res.Failed)
	}

	stock, hist := f.stockOf("prod-1")
	require.NotEmpty(t, hist)
	var prev int64
	for i, h := range hist {
		if i > 0 {
			assert.Equal(t, prev+h.Quantity, h.Balance, "Balance(N) = Balance(N-1) + Quantity(N)")
		}
		prev = h.Balance
	}
	assert.Equal(t, prev, stock.Balance, "el saldo del stock es el del último asiento")
	assert.Equal(t, int64(400), stock.Balance)
}

func TestCompletar_LoteParcial(t *testing.T) {
	f := newCompleteFixture()
	f.seedOrder("2024-03-001", "prod-1", 0)
	now := time.Now()

	res := f.uc.Complete(context.Background(), []dto.CompleteWorkOrderRequest{
		{ID: "2024-03-001", CompletedQuantity: 100, CompletedAt: &now, Status: entity.WorkOrderCompleted},
		{ID: "2024-03-999", CompletedQuantity: 50, CompletedAt: &now, Status: entity.WorkOrderCompleted},
	})

	assert.Len(t, res.Updated, 1, "las hermanas válidas no se revierten por el fallo")
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "2024-03-999", res.Failed[0].ID)
	assert.Equal(t, domain.ErrWorkOrderNotFound.Error(), res.Failed[0].Reason)
}

func TestCompletar_ProductoExplicitoInexistente(t *testing.T) {
	f := newCompleteFixture()
	f.seedOrder("2024-03-001", "prod-1", 0)
	now := time.Now()

	res := f.uc.Complete(context.Background(), []dto.CompleteWorkOrderRequest{
		{ID: "2024-03-001", CompletedQuantity: 100, CompletedAt: &now, Status: entity.WorkOrderCompleted, ProductID: "prod-x"},
	})

	assert.Empty(t, res.Updated)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, domain.ErrProductNotFound.Error(), res.Failed[0].Reason)
}
