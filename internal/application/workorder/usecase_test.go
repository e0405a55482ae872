package workorder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appwo "github.com/jhoicas/Fabrica-api/internal/application/workorder"
	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

type usecaseFixture struct {
	store *memStore
	seqs  *fakeSeqRepo
	uc    *appwo.UseCase
}

func newUsecaseFixture() *usecaseFixture {
	store := newMemStore()
	seqs := newFakeSeqRepo()
	uc := appwo.NewUseCase(
		&fakeTxRunner{s: store},
		appwo.NewSequenceAllocator(seqs),
		&fakeWorkOrderRepo{store},
		&fakeProductRepo{store},
		testLogger(),
	)
	return &usecaseFixture{store: store, seqs: seqs, uc: uc}
}

func (f *usecaseFixture) seedProduct() {
	f.store.accounts["acc-1"] = &entity.Account{ID: "acc-1", Name: "Plásticos del Sur"}
	f.store.products["prod-1"] = &entity.Product{
		ID:        "prod-1",
		AccountID: "acc-1",
		Name:      "Bolsa 20x30",
		Thickness: decimal.RequireFromString("0.050"),
		Length:    decimal.RequireFromString("30.00"),
		Width:     decimal.RequireFromString("20.00"),
	}
}

func TestCrearOrden_AsignaIDSecuencial(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()

	wo, err := f.uc.Create(context.Background(), dto.CreateWorkOrderRequest{
		AccountID: "acc-1",
		ProductID: "prod-1",
		OrderedAt: marzo,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-001", wo.ID)
	assert.Equal(t, entity.WorkOrderNotStarted, wo.Status, "estado por defecto")

	wo, err = f.uc.Create(context.Background(), dto.CreateWorkOrderRequest{
		AccountID: "acc-1",
		ProductID: "prod-1",
		OrderedAt: marzo,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-002", wo.ID)
}

func TestCrearOrden_FalloInsert_CompensaContador(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()
	f.store.createWorkOrderErr = errors.New("unique_violation")

	_, err := f.uc.Create(context.Background(), dto.CreateWorkOrderRequest{
		AccountID: "acc-1",
		ProductID: "prod-1",
		OrderedAt: marzo,
	})
	require.Error(t, err)

	// El contador se compensó: la siguiente creación reutiliza seq=1.
	f.store.createWorkOrderErr = nil
	wo, err := f.uc.Create(context.Background(), dto.CreateWorkOrderRequest{
		AccountID: "acc-1",
		ProductID: "prod-1",
		OrderedAt: marzo,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-001", wo.ID)
}

func TestCrearOrden_FalloConIDProvisto_NoCompensa(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()

	// Contador en 2 por dos creaciones previas.
	for i := 0; i < 2; i++ {
		_, err := f.uc.Create(context.Background(), dto.CreateWorkOrderRequest{
			AccountID: "acc-1", ProductID: "prod-1", OrderedAt: marzo,
		})
		require.NoError(t, err)
	}

	f.store.createWorkOrderErr = errors.New("unique_violation")
	_, err := f.uc.Create(context.Background(), dto.CreateWorkOrderRequest{
		ID:        "2024-03-001",
		AccountID: "acc-1",
		ProductID: "prod-1",
		OrderedAt: marzo,
	})
	require.Error(t, err)

	// Un ID provisto no consumió el contador, así que no hay nada que devolver.
	seq, err := f.seqs.Get("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2, seq.Seq)
}

func TestImportarOrdenes_ResuelveProductoPorEspecificacion(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()

	res := f.uc.Import(context.Background(), []dto.ImportWorkOrderRequest{{
		AccountName: "Plásticos del Sur",
		ProductName: "Bolsa 20x30",
		Thickness:   decimal.RequireFromString("0.050"),
		Length:      decimal.RequireFromString("30.00"),
		Width:       decimal.RequireFromString("20.00"),
		OrderedAt:   marzo,
		OrderQuantity: 500,
	}})

	assert.Equal(t, 1, res.CreatedCount)
	assert.Empty(t, res.FailedList)

	rows, err := f.uc.ListAll(context.Background(), dto.ListWorkOrdersQuery{
		OrderedFrom: "2024-03-01", OrderedTo: "2024-03-31",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "prod-1", rows[0].ProductID)
	assert.Equal(t, "acc-1", rows[0].AccountID)
}

func TestImportarOrdenes_LoteParcial(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()

	res := f.uc.Import(context.Background(), []dto.ImportWorkOrderRequest{
		{
			AccountName: "Plásticos del Sur",
			ProductName: "Bolsa 20x30",
			Thickness:   decimal.RequireFromString("0.050"),
			Length:      decimal.RequireFromString("30.00"),
			Width:       decimal.RequireFromString("20.00"),
			OrderedAt:   marzo,
		},
		{
			AccountName: "Cliente Fantasma",
			ProductName: "Bolsa 10x10",
			OrderedAt:   marzo,
		},
	})

	assert.Equal(t, 1, res.CreatedCount)
	require.Len(t, res.FailedList, 1)
	assert.Equal(t, "Cliente Fantasma", res.FailedList[0].AccountName)
	assert.Equal(t, domain.ErrProductNotFound.Error(), res.FailedList[0].Reason)
}

func TestListarOrdenes_FechaInvalida(t *testing.T) {
	f := newUsecaseFixture()

	_, err := f.uc.List(context.Background(), dto.ListWorkOrdersQuery{
		OrderedFrom: "03/01/2024", OrderedTo: "2024-03-31",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListarOrdenesPendientesDePlancha(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()
	done := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	f.store.workOrders["2024-03-001"] = &entity.WorkOrder{ID: "2024-03-001", ProductID: "prod-1", OrderedAt: marzo, IsPlateReady: false}
	f.store.workOrders["2024-03-002"] = &entity.WorkOrder{ID: "2024-03-002", ProductID: "prod-1", OrderedAt: marzo, IsPlateReady: true}
	f.store.workOrders["2024-03-003"] = &entity.WorkOrder{ID: "2024-03-003", ProductID: "prod-1", OrderedAt: marzo, IsPlateReady: false, CompletedAt: &done}

	rows, err := f.uc.ListNeedingPlate(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1, "solo las abiertas sin plancha lista")
	assert.Equal(t, "2024-03-001", rows[0].ID)
}

func TestListarOrdenesPorProducto(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()
	done := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	f.store.workOrders["2024-03-001"] = &entity.WorkOrder{ID: "2024-03-001", ProductID: "prod-1", OrderedAt: marzo}
	f.store.workOrders["2024-03-002"] = &entity.WorkOrder{ID: "2024-03-002", ProductID: "prod-1", OrderedAt: marzo, CompletedAt: &done}
	f.store.workOrders["2024-03-003"] = &entity.WorkOrder{ID: "2024-03-003", ProductID: "prod-2", OrderedAt: marzo}

	rows, err := f.uc.ListByProduct(context.Background(), "prod-1")
	require.NoError(t, err)
	require.Len(t, rows, 2, "el historial del producto incluye las completadas")
	for _, wo := range rows {
		assert.Equal(t, "prod-1", wo.ProductID)
	}

	_, err = f.uc.ListByProduct(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListarOrdenes_MasRecientePrimero(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()
	// Como texto "2024-03-999" ordena después de "2024-03-1000"; el listado
	// ordena por fecha de pedido, no por ID.
	f.store.workOrders["2024-03-999"] = &entity.WorkOrder{
		ID: "2024-03-999", ProductID: "prod-1",
		OrderedAt: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
	f.store.workOrders["2024-03-1000"] = &entity.WorkOrder{
		ID: "2024-03-1000", ProductID: "prod-1",
		OrderedAt: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}

	rows, err := f.uc.ListAll(context.Background(), dto.ListWorkOrdersQuery{
		OrderedFrom: "2024-03-01", OrderedTo: "2024-03-31",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-1000", rows[0].ID)
	assert.Equal(t, "2024-03-999", rows[1].ID)
}

func TestActualizarOrden_EstadoInvalido(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()
	wo, err := f.uc.Create(context.Background(), dto.CreateWorkOrderRequest{
		AccountID: "acc-1", ProductID: "prod-1", OrderedAt: marzo,
	})
	require.NoError(t, err)

	bad := entity.WorkOrderStatus("PAUSED")
	_, err = f.uc.Update(context.Background(), wo.ID, dto.UpdateWorkOrderRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrdenesPorVencimiento_SeparaVencidasDeInminentes(t *testing.T) {
	f := newUsecaseFixture()
	deadline := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	f.store.workOrders["2024-03-001"] = &entity.WorkOrder{
		ID: "2024-03-001", DeliverBy: deadline.AddDate(0, 0, -2), Status: entity.WorkOrderPrinting,
	}
	f.store.workOrders["2024-03-002"] = &entity.WorkOrder{
		ID: "2024-03-002", DeliverBy: deadline.AddDate(0, 0, 2), Status: entity.WorkOrderPrinting,
	}
	done := deadline
	f.store.workOrders["2024-03-003"] = &entity.WorkOrder{
		ID: "2024-03-003", DeliverBy: deadline.AddDate(0, 0, -5), CompletedAt: &done,
	}

	out, err := f.uc.ByDeadline(context.Background(), deadline)
	require.NoError(t, err)
	require.Len(t, out.Overdue, 1)
	assert.Equal(t, "2024-03-001", out.Overdue[0].ID)
	require.Len(t, out.Imminent, 1)
	assert.Equal(t, "2024-03-002", out.Imminent[0].ID)
}

func TestActualizarOrdenes_LoteParcial(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()
	wo, err := f.uc.Create(context.Background(), dto.CreateWorkOrderRequest{
		AccountID: "acc-1", ProductID: "prod-1", OrderedAt: marzo,
	})
	require.NoError(t, err)

	urgent := true
	out := f.uc.BulkUpdate(context.Background(), []dto.BulkUpdateWorkOrderRequest{
		{ID: wo.ID, UpdateWorkOrderRequest: dto.UpdateWorkOrderRequest{IsUrgent: &urgent}},
		{ID: "2024-03-999", UpdateWorkOrderRequest: dto.UpdateWorkOrderRequest{IsUrgent: &urgent}},
	})

	require.Len(t, out.Updated, 1)
	assert.True(t, out.Updated[0].IsUrgent)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "2024-03-999", out.Failed[0].ID)
	assert.Equal(t, domain.ErrWorkOrderNotFound.Error(), out.Failed[0].Reason)
}

func TestEstadisticas_PorEstadoYCarasDeImpresion(t *testing.T) {
	f := newUsecaseFixture()
	f.seedProduct()
	f.store.products["prod-1"].PrintSide = entity.PrintSideSingle

	for i := 0; i < 2; i++ {
		_, err := f.uc.Create(context.Background(), dto.CreateWorkOrderRequest{
			AccountID: "acc-1", ProductID: "prod-1", OrderedAt: marzo,
		})
		require.NoError(t, err)
	}

	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	stats, err := f.uc.Stats(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ByStatus[entity.WorkOrderNotStarted])
	assert.Equal(t, 2, stats.ByPrintSide[entity.PrintSideSingle])
}

func TestBorrarOrdenes_SinIDs(t *testing.T) {
	f := newUsecaseFixture()

	_, err := f.uc.Delete(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
