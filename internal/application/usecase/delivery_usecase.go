package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	appstock "github.com/jhoicas/Fabrica-api/internal/application/stock"
	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	domainwo "github.com/jhoicas/Fabrica-api/internal/domain/workorder"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
	"github.com/jhoicas/Fabrica-api/pkg/logger"
)

// DeliveryUseCase casos de uso de entregas. Una entrega confirmada descuenta
// del libro de stock con un asiento DELIVERED y acumula la cantidad entregada
// en la orden de trabajo asociada.
type DeliveryUseCase struct {
	repo       repository.DeliveryRepository
	products   repository.ProductRepository
	workOrders repository.WorkOrderRepository
	txRunner   appstock.TxRunner
	log        *logger.Logger
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	repo repository.DeliveryRepository,
	products repository.ProductRepository,
	workOrders repository.WorkOrderRepository,
	txRunner appstock.TxRunner,
	log *logger.Logger,
) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo, products: products, workOrders: workOrders, txRunner: txRunner, log: log}
}

// Create registra una entrega. Si viene con orden de trabajo, la orden debe
// existir y estar completada. Con IsDelivered la entrega descuenta stock de
// inmediato.
func (uc *DeliveryUseCase) Create(ctx context.Context, in dto.CreateDeliveryRequest) (*entity.Delivery, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.WorkOrderID != "" {
		wo, err := uc.workOrders.GetByID(in.WorkOrderID)
		if err != nil {
			return nil, err
		}
		if wo == nil {
			return nil, domain.ErrWorkOrderNotFound
		}
		if wo.CompletedAt == nil {
			return nil, domain.ErrConflict // solo se entrega producción completada
		}
	}
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	delivery := &entity.Delivery{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		WorkOrderID: in.WorkOrderID,
		Date:        date,
		Method:      in.Method,
		Quantity:    in.Quantity,
		IsDelivered: in.IsDelivered,
		Memo:        in.Memo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(delivery); err != nil {
		return nil, err
	}
	if delivery.IsDelivered {
		if err := uc.settle(ctx, delivery); err != nil {
			return nil, err
		}
	}
	return uc.repo.GetByID(delivery.ID)
}

// List lista entregas de un día (por defecto hoy), opcionalmente por método.
func (uc *DeliveryUseCase) List(ctx context.Context, q dto.ListDeliveriesQuery) (*dto.ListResponse[*entity.Delivery], error) {
	q.DefaultPage()
	date := time.Now()
	if q.Date != "" {
		var err error
		date, err = time.Parse(domainwo.DateLayout, q.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	rows, count, err := uc.repo.ListByDate(date, q.Method, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse[*entity.Delivery]{
		Count:   count,
		Rows:    rows,
		HasMore: dto.HasMore(q.Limit, q.Offset, count),
	}, nil
}

// Update modifica una entrega pendiente. Confirmarla (IsDelivered a true)
// dispara el descuento de stock; una entrega ya confirmada no se reabre.
func (uc *DeliveryUseCase) Update(ctx context.Context, id string, in dto.UpdateDeliveryRequest) (*entity.Delivery, error) {
	delivery, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrNotFound
	}
	if delivery.IsDelivered {
		return nil, domain.ErrConflict
	}
	if in.Date != nil {
		delivery.Date = *in.Date
	}
	if in.Method != nil {
		delivery.Method = *in.Method
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		delivery.Quantity = *in.Quantity
	}
	if in.Memo != nil {
		delivery.Memo = *in.Memo
	}
	confirm := in.IsDelivered != nil && *in.IsDelivered
	if confirm {
		delivery.IsDelivered = true
	}
	delivery.UpdatedAt = time.Now()
	if err := uc.repo.Update(delivery); err != nil {
		return nil, err
	}
	if confirm {
		if err := uc.settle(ctx, delivery); err != nil {
			return nil, err
		}
	}
	return uc.repo.GetByID(id)
}

// Delete borra entregas por ID. Las confirmadas no se borran: su asiento en
// el libro ya es historia.
func (uc *DeliveryUseCase) Delete(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, id := range ids {
		delivery, err := uc.repo.GetByID(id)
		if err != nil {
			return 0, err
		}
		if delivery != nil && delivery.IsDelivered {
			return 0, domain.ErrConflict
		}
	}
	return uc.repo.DeleteByIDs(ids)
}

// settle asienta el DELIVERED en el libro de stock con la fila bloqueada y
// acumula la cantidad entregada en la orden asociada.
func (uc *DeliveryUseCase) settle(ctx context.Context, delivery *entity.Delivery) error {
	err := uc.txRunner.RunStock(ctx, func(
		stocks repository.StockRepository,
		histories repository.StockHistoryRepository,
	) error {
		now := time.Now()
		stock, err := stocks.GetByProductForUpdate(delivery.ProductID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound // sin stock no hay nada que entregar
		}
		last, err := histories.Latest(stock.ID)
		if err != nil {
			return err
		}
		var lastBalance int64
		if last != nil {
			lastBalance = last.Balance
		}
		newBalance := lastBalance - delivery.Quantity
		if err := histories.Append(&entity.StockHistory{
			ID:        uuid.New().String(),
			StockID:   stock.ID,
			Type:      entity.StockHistoryDelivered,
			Quantity:  -delivery.Quantity,
			Balance:   newBalance,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		return stocks.UpdateBalance(stock.ID, newBalance)
	})
	if err != nil {
		return err
	}

	if delivery.WorkOrderID == "" {
		return nil
	}
	wo, err := uc.workOrders.GetByID(delivery.WorkOrderID)
	if err != nil {
		return err
	}
	if wo == nil {
		return domain.ErrWorkOrderNotFound
	}
	wo.DeliveredQuantity += delivery.Quantity
	deliveredAt := delivery.Date
	wo.DeliveredAt = &deliveredAt
	wo.UpdatedAt = time.Now()
	return uc.workOrders.Update(wo)
}
