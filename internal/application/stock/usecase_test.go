package stock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Fabrica-api/internal/application/stock"
	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
	"github.com/jhoicas/Fabrica-api/pkg/logger"
)

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	stocks    map[string]*entity.Stock
	histories map[string][]*entity.StockHistory
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[string]*entity.Product),
		stocks:    make(map[string]*entity.Stock),
		histories: make(map[string][]*entity.StockHistory),
	}
}

type fakeProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) FindBySpec(_, _ string, _, _, _ decimal.Decimal) (*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) List(_ repository.ProductFilter) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return r.Create(p) }

func (r *fakeProductRepo) DeleteByIDs(_ []string) (int64, error) { return 0, nil }

type fakeStockRepo struct{ s *memStore }

var _ repository.StockRepository = (*fakeStockRepo)(nil)

func (r *fakeStockRepo) GetByID(id string) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stocks[id]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (r *fakeStockRepo) GetByProduct(productID string) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.stocks {
		if st.ProductID == productID {
			cp := *st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) GetByProductForUpdate(productID string) (*entity.Stock, error) {
	return r.GetByProduct(productID)
}

func (r *fakeStockRepo) Create(stock *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *stock
	r.s.stocks[stock.ID] = &cp
	return nil
}

func (r *fakeStockRepo) UpdateBalance(id string, balance int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stocks[id].Balance = balance
	r.s.stocks[id].UpdatedAt = time.Now()
	return nil
}

func (r *fakeStockRepo) List(limit, offset int) ([]*entity.Stock, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Stock, 0, len(r.s.stocks))
	for _, st := range r.s.stocks {
		cp := *st
		out = append(out, &cp)
	}
	return out, len(out), nil
}

type fakeHistoryRepo struct{ s *memStore }

var _ repository.StockHistoryRepository = (*fakeHistoryRepo)(nil)

func (r *fakeHistoryRepo) Append(h *entity.StockHistory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *h
	r.s.histories[h.StockID] = append(r.s.histories[h.StockID], &cp)
	return nil
}

func (r *fakeHistoryRepo) Latest(stockID string) (*entity.StockHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	hs := r.s.histories[stockID]
	if len(hs) == 0 {
		return nil, nil
	}
	cp := *hs[len(hs)-1]
	return &cp, nil
}

func (r *fakeHistoryRepo) ListByStock(stockID string) ([]*entity.StockHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]*entity.StockHistory(nil), r.s.histories[stockID]...), nil
}

type fakeTxRunner struct {
	s  *memStore
	mu sync.Mutex
}

func (t *fakeTxRunner) RunStock(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(&fakeStockRepo{t.s}, &fakeHistoryRepo{t.s})
}

type fixture struct {
	store *memStore
	uc    *appstock.UseCase
}

func newFixture() *fixture {
	store := newMemStore()
	uc := appstock.NewUseCase(
		&fakeTxRunner{s: store},
		&fakeStockRepo{store},
		&fakeHistoryRepo{store},
		&fakeProductRepo{store},
		logger.New(logger.Config{Env: "production", Level: "error"}),
	)
	return &fixture{store: store, uc: uc}
}

func (f *fixture) historyOf(productID string) []*entity.StockHistory {
	for _, st := range f.store.stocks {
		if st.ProductID == productID {
			return f.store.histories[st.ID]
		}
	}
	return nil
}

func TestAjustarStock_PrimerContacto_CreaConAsientoSemilla(t *testing.T) {
	f := newFixture()
	f.store.products["prod-1"] = &entity.Product{ID: "prod-1"}

	updated, failed := f.uc.Adjust(context.Background(), []dto.AdjustStockRequest{
		{ProductID: "prod-1", Balance: 120},
	})

	require.Empty(t, failed)
	require.Len(t, updated, 1)
	assert.Equal(t, int64(120), updated[0].Balance)

	hist := f.historyOf("prod-1")
	require.Len(t, hist, 1)
	assert.Equal(t, entity.StockHistoryCreated, hist[0].Type)
	assert.Equal(t, int64(120), hist[0].Quantity, "la línea base lleva el saldo contado como cantidad")
	assert.Equal(t, int64(120), hist[0].Balance)
}

func TestAjustarStock_DeltaContraBalance(t *testing.T) {
	f := newFixture()
	f.store.products["prod-1"] = &entity.Product{ID: "prod-1"}

	_, failed := f.uc.Adjust(context.Background(), []dto.AdjustStockRequest{
		{ProductID: "prod-1", Balance: 100},
	})
	require.Empty(t, failed)

	_, failed = f.uc.Adjust(context.Background(), []dto.AdjustStockRequest{
		{ProductID: "prod-1", Balance: 80},
	})
	require.Empty(t, failed)

	hist := f.historyOf("prod-1")
	require.Len(t, hist, 2)
	last := hist[1]
	assert.Equal(t, entity.StockHistoryStocktaking, last.Type)
	assert.Equal(t, int64(-20), last.Quantity, "delta contra el Balance del último asiento")
	assert.Equal(t, int64(80), last.Balance)
}

func TestAjustarStock_Desecho_AsientaDisposed(t *testing.T) {
	f := newFixture()
	f.store.products["prod-1"] = &entity.Product{ID: "prod-1"}

	_, failed := f.uc.Adjust(context.Background(), []dto.AdjustStockRequest{
		{ProductID: "prod-1", Balance: 200},
	})
	require.Empty(t, failed)

	// Se desechan 50 unidades: saldo resultante 150 con asiento DISPOSED.
	updated, failed := f.uc.Adjust(context.Background(), []dto.AdjustStockRequest{
		{ProductID: "prod-1", Balance: 150, Type: entity.StockHistoryDisposed},
	})
	require.Empty(t, failed)
	require.Len(t, updated, 1)

	hist := f.historyOf("prod-1")
	require.Len(t, hist, 2)
	last := hist[1]
	assert.Equal(t, entity.StockHistoryDisposed, last.Type)
	assert.Equal(t, int64(-50), last.Quantity)
	assert.Equal(t, int64(150), last.Balance)
}

func TestAjustarStock_TipoNoAdmitido_Rechazado(t *testing.T) {
	f := newFixture()
	f.store.products["prod-1"] = &entity.Product{ID: "prod-1"}

	// MANUFACTURED sólo lo escribe el cierre de órdenes, nunca un ajuste manual.
	updated, failed := f.uc.Adjust(context.Background(), []dto.AdjustStockRequest{
		{ProductID: "prod-1", Balance: 100, Type: entity.StockHistoryManufactured},
	})
	assert.Empty(t, updated)
	require.Len(t, failed, 1)
	assert.Contains(t, failed[0].Reason, "no admitido")
	assert.Empty(t, f.historyOf("prod-1"), "un ajuste rechazado no escribe asientos")
}

func TestAjustarStock_MismoSaldo_Idempotente(t *testing.T) {
	f := newFixture()
	f.store.products["prod-1"] = &entity.Product{ID: "prod-1"}

	for i := 0; i < 3; i++ {
		updated, failed := f.uc.Adjust(context.Background(), []dto.AdjustStockRequest{
			{ProductID: "prod-1", Balance: 100},
		})
		require.Empty(t, failed)
		require.Len(t, updated, 1)
		assert.Equal(t, int64(100), updated[0].Balance)
	}

	hist := f.historyOf("prod-1")
	assert.Len(t, hist, 1, "repetir el mismo saldo contado no agrega asientos")
}

func TestAjustarStock_MantieneInvarianteDelLibro(t *testing.T) {
	f := newFixture()
	f.store.products["prod-1"] = &entity.Product{ID: "prod-1"}

	for _, balance := range []int64{50, 75, 75, 30, 110} {
		_, failed := f.uc.Adjust(context.Background(), []dto.AdjustStockRequest{
			{ProductID: "prod-1", Balance: balance},
		})
		require.Empty(t, failed)
	}

	hist := f.historyOf("prod-1")
	require.NotEmpty(t, hist)
	var prev int64
	for i, h := range hist {
		if i > 0 {
			assert.Equal(t, prev+h.Quantity, h.Balance, "Balance(N) = Balance(N-1) + Quantity(N)")
		}
		prev = h.Balance
	}
	assert.Equal(t, int64(110), prev)
}

func TestAjustarStock_ProductoInexistente_LoteParcial(t *testing.T) {
	f := newFixture()
	f.store.products["prod-1"] = &entity.Product{ID: "prod-1"}

	updated, failed := f.uc.Adjust(context.Background(), []dto.AdjustStockRequest{
		{ProductID: "prod-1", Balance: 40},
		{ProductID: "prod-x", Balance: 10},
	})

	require.Len(t, updated, 1)
	require.Len(t, failed, 1)
	assert.Equal(t, "prod-x", failed[0].ProductID)
	assert.Equal(t, domain.ErrProductNotFound.Error(), failed[0].Reason)
}

func TestHistorialDeStock_InexistenteFalla(t *testing.T) {
	f := newFixture()

	_, err := f.uc.History(context.Background(), "st-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
