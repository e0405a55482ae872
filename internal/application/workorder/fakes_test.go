package workorder_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
	"github.com/jhoicas/Fabrica-api/pkg/logger"
)

// memStore almacena todo en memoria detrás de un solo mutex. Los fakes de
// repositorio comparten el mismo store, igual que los repos reales comparten
// la misma BD.
type memStore struct {
	mu         sync.Mutex
	workOrders map[string]*entity.WorkOrder
	accounts   map[string]*entity.Account
	products   map[string]*entity.Product
	stocks     map[string]*entity.Stock // por ID
	histories  map[string][]*entity.StockHistory

	createWorkOrderErr error // inyección de fallo para el camino de rollback
}

func newMemStore() *memStore {
	return &memStore{
		workOrders: make(map[string]*entity.WorkOrder),
		accounts:   make(map[string]*entity.Account),
		products:   make(map[string]*entity.Product),
		stocks:     make(map[string]*entity.Stock),
		histories:  make(map[string][]*entity.StockHistory),
	}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type fakeWorkOrderRepo struct{ s *memStore }

var _ repository.WorkOrderRepository = (*fakeWorkOrderRepo)(nil)

func (r *fakeWorkOrderRepo) Create(wo *entity.WorkOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.createWorkOrderErr != nil {
		return r.s.createWorkOrderErr
	}
	cp := *wo
	r.s.workOrders[wo.ID] = &cp
	return nil
}

func (r *fakeWorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wo, ok := r.s.workOrders[id]
	if !ok {
		return nil, nil
	}
	cp := *wo
	return &cp, nil
}

func (r *fakeWorkOrderRepo) List(f repository.WorkOrderFilter) ([]*entity.WorkOrder, int, error) {
	rows, err := r.ListAll(f)
	return rows, len(rows), err
}

func (r *fakeWorkOrderRepo) ListAll(f repository.WorkOrderFilter) ([]*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.WorkOrder, 0)
	for _, wo := range r.s.workOrders {
		if !f.IncludeCompleted && wo.CompletedAt != nil {
			continue
		}
		if f.NeedPlate && wo.IsPlateReady {
			continue
		}
		if f.ProductID != "" && wo.ProductID != f.ProductID {
			continue
		}
		cp := *wo
		out = append(out, &cp)
	}
	// Mismo orden que el repo real: pedido más reciente primero, ID desempata.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OrderedAt.Equal(out[j].OrderedAt) {
			return out[i].OrderedAt.After(out[j].OrderedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *fakeWorkOrderRepo) Update(wo *entity.WorkOrder) error {
	return r.Create(wo)
}

func (r *fakeWorkOrderRepo) UpdateCompletion(id string, completedQuantity int64, completedAt *time.Time, status entity.WorkOrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wo := r.s.workOrders[id]
	wo.CompletedQuantity = completedQuantity
	wo.CompletedAt = completedAt
	if status != "" {
		wo.Status = status
	}
	wo.UpdatedAt = time.Now()
	return nil
}

func (r *fakeWorkOrderRepo) DeleteByIDs(ids []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := r.s.workOrders[id]; ok {
			delete(r.s.workOrders, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeWorkOrderRepo) ListOpenByDeadline(deadline time.Time) ([]*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.WorkOrder, 0)
	for _, wo := range r.s.workOrders {
		if wo.CompletedAt == nil && !wo.DeliverBy.After(deadline) {
			cp := *wo
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeWorkOrderRepo) CountByStatus(from, to time.Time) (map[entity.WorkOrderStatus]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[entity.WorkOrderStatus]int)
	for _, wo := range r.s.workOrders {
		if wo.OrderedAt.Before(from) || wo.OrderedAt.After(to) {
			continue
		}
		out[wo.Status]++
	}
	return out, nil
}

func (r *fakeWorkOrderRepo) CountByPrintSide(from, to time.Time) (map[entity.PrintSide]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[entity.PrintSide]int)
	for _, wo := range r.s.workOrders {
		if wo.OrderedAt.Before(from) || wo.OrderedAt.After(to) {
			continue
		}
		side := entity.PrintSideNone
		if p, ok := r.s.products[wo.ProductID]; ok && p.PrintSide != "" {
			side = p.PrintSide
		}
		out[side]++
	}
	return out, nil
}

type fakeProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindBySpec(accountName, name string, thickness, length, width decimal.Decimal) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var accountID string
	for _, a := range r.s.accounts {
		if a.Name == accountName {
			accountID = a.ID
			break
		}
	}
	for _, p := range r.s.products {
		if p.AccountID == accountID && p.Name == name &&
			p.Thickness.Equal(thickness) && p.Length.Equal(length) && p.Width.Equal(width) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(f repository.ProductFilter) ([]*entity.Product, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return r.Create(p) }

func (r *fakeProductRepo) DeleteByIDs(ids []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := r.s.products[id]; ok {
			delete(r.s.products, id)
			n++
		}
	}
	return n, nil
}

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
	st := r.s.stocks[id]
	st.Balance = balance
	st.UpdatedAt = time.Now()
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
	hs := r.s.histories[stockID]
	out := make([]*entity.StockHistory, 0, len(hs))
	for _, h := range hs {
		cp := *h
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner no abre transacciones reales: cada unidad de trabajo se
// serializa con un mutex, imitando el lock de fila del storage real.
type fakeTxRunner struct {
	s  *memStore
	mu sync.Mutex
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	workOrderRepo repository.WorkOrderRepository,
	seqRepo repository.WorkOrderSeqRepository,
	stockRepo repository.StockRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(&fakeWorkOrderRepo{t.s}, newFakeSeqRepo(), &fakeStockRepo{t.s}, &fakeHistoryRepo{t.s})
}
