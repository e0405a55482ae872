package workorder

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
	domainwo "github.com/jhoicas/Fabrica-api/internal/domain/workorder"
	"github.com/jhoicas/Fabrica-api/pkg/logger"
)

// UseCase casos de uso de órdenes de trabajo: creación con asignación de
// secuencia y rollback compensatorio, importación masiva, listados y
// completado con asiento en el libro de stock.
type UseCase struct {
	txRunner   TxRunner
	allocator  *SequenceAllocator
	workOrders repository.WorkOrderRepository
	products   repository.ProductRepository
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	allocator *SequenceAllocator,
	workOrders repository.WorkOrderRepository,
	products repository.ProductRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		allocator:  allocator,
		workOrders: workOrders,
		products:   products,
		log:        log,
	}
}

// Create asigna el ID y persiste la orden dentro de una transacción.
// Si el insert falla tras consumir un ID generado, se compensa con
// Rollback del contador (saga manual: contador y fila viven en tablas
// distintas y la asignación ocurre antes de abrir la transacción).
func (uc *UseCase) Create(ctx context.Context, in dto.CreateWorkOrderRequest) (*entity.WorkOrder, error) {
	id, err := uc.allocator.Allocate(in.OrderedAt, in.ID)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("id", id).Msg("ID de orden de trabajo generado")

	now := time.Now()
	orderedAt := in.OrderedAt
	if orderedAt.IsZero() {
		orderedAt = now
	}
	status := in.Status
	if status == "" {
		status = entity.WorkOrderNotStarted
	}
	wo := &entity.WorkOrder{
		ID:               id,
		AccountID:        in.AccountID,
		ProductID:        in.ProductID,
		OrderedAt:        orderedAt,
		DeliverBy:        in.DeliverBy,
		OrderQuantity:    in.OrderQuantity,
		IsUrgent:         in.IsUrgent,
		ShouldBePunctual: in.ShouldBePunctual,
		PlateStatus:      in.PlateStatus,
		IsPlateReady:     in.IsPlateReady,
		DeliveryMethod:   in.DeliveryMethod,
		WorkMemo:         in.WorkMemo,
		DeliveryMemo:     in.DeliveryMemo,
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = uc.txRunner.Run(ctx, func(
		workOrders repository.WorkOrderRepository,
		_ repository.WorkOrderSeqRepository,
		_ repository.StockRepository,
		_ repository.StockHistoryRepository,
	) error {
		return workOrders.Create(wo)
	})
	if err != nil {
		// Solo los IDs generados consumieron el contador; los provistos no.
		if in.ID == "" {
			rolledBack, rbErr := uc.allocator.Rollback(in.OrderedAt)
			if rbErr != nil {
				uc.log.Error().Err(rbErr).Str("id", id).Msg("rollback del contador de secuencia falló")
			} else {
				uc.log.Debug().Str("id", rolledBack).Msg("contador de secuencia compensado")
			}
		}
		return nil, err
	}

	return uc.workOrders.GetByID(wo.ID)
}

// Import crea órdenes por lote resolviendo cada producto por cliente + nombre
// + medidas. Cada fila es una unidad de trabajo independiente y el lote corre
// concurrente: los fallos no revierten a las hermanas. La capa HTTP decide el
// status según cuántas fallaron.
func (uc *UseCase) Import(ctx context.Context, rows []dto.ImportWorkOrderRequest) dto.ImportWorkOrdersResponse {
	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		created    int
		failedList = make([]dto.FailedWorkOrderImport, 0)
	)

	for _, row := range rows {
		wg.Add(1)
		go func(row dto.ImportWorkOrderRequest) {
			defer wg.Done()
			err := uc.importOne(ctx, row)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failedList = append(failedList, dto.FailedWorkOrderImport{
					ImportWorkOrderRequest: row,
					Reason:                 err.Error(),
				})
				return
			}
			created++
		}(row)
	}
	wg.Wait()

	return dto.ImportWorkOrdersResponse{CreatedCount: created, FailedList: failedList}
}

func (uc *UseCase) importOne(ctx context.Context, row dto.ImportWorkOrderRequest) error {
	product, err := uc.products.FindBySpec(row.AccountName, row.ProductName, row.Thickness, row.Length, row.Width)
	if err != nil {
		return err
	}
	if product == nil || product.AccountID == "" {
		return domain.ErrProductNotFound
	}
	_, err = uc.Create(ctx, dto.CreateWorkOrderRequest{
		ID:               row.ID,
		AccountID:        product.AccountID,
		ProductID:        product.ID,
		OrderedAt:        row.OrderedAt,
		DeliverBy:        row.DeliverBy,
		OrderQuantity:    row.OrderQuantity,
		IsUrgent:         row.IsUrgent,
		ShouldBePunctual: row.ShouldBePunctual,
		DeliveryMethod:   row.DeliveryMethod,
		WorkMemo:         row.WorkMemo,
		DeliveryMemo:     row.DeliveryMemo,
		Status:           row.Status,
	})
	return err
}

// GetByID obtiene una orden con sus relaciones.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.WorkOrder, error) {
	return uc.workOrders.GetByID(id)
}

// List devuelve la página que matchea el filtro. Sin rango de fechas se usan
// los últimos 14 días; las completadas se excluyen salvo includeCompleted.
func (uc *UseCase) List(ctx context.Context, q dto.ListWorkOrdersQuery) (*dto.ListResponse[*entity.WorkOrder], error) {
	q.DefaultPage()
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	rows, count, err := uc.workOrders.List(f)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse[*entity.WorkOrder]{
		Count:   count,
		Rows:    rows,
		HasMore: dto.HasMore(q.Limit, q.Offset, count),
	}, nil
}

// ListAll devuelve todas las órdenes que matchean el filtro, sin paginar.
func (uc *UseCase) ListAll(ctx context.Context, q dto.ListWorkOrdersQuery) ([]*entity.WorkOrder, error) {
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	f.Limit = 0
	return uc.workOrders.ListAll(f)
}

func buildFilter(q dto.ListWorkOrdersQuery) (repository.WorkOrderFilter, error) {
	f := repository.WorkOrderFilter{
		AccountName:      q.AccountName,
		ProductName:      q.ProductName,
		IncludeCompleted: q.IncludeCompleted,
		Limit:            q.Limit,
		Offset:           q.Offset,
	}
	if q.OrderedFrom == "" || q.OrderedTo == "" {
		f.OrderedFrom, f.OrderedTo = domainwo.DefaultOrderedAtRange(time.Now())
		return f, nil
	}
	from, err := time.Parse(domainwo.DateLayout, q.OrderedFrom)
	if err != nil {
		return f, domain.ErrInvalidInput
	}
	to, err := time.Parse(domainwo.DateLayout, q.OrderedTo)
	if err != nil {
		return f, domain.ErrInvalidInput
	}
	f.OrderedFrom, f.OrderedTo = from, to
	return f, nil
}

// ListNeedingPlate devuelve las órdenes abiertas cuya plancha aún no está
// lista, de cualquier fecha (la cola de trabajo del área de grabado).
func (uc *UseCase) ListNeedingPlate(ctx context.Context) ([]*entity.WorkOrder, error) {
	return uc.workOrders.ListAll(repository.WorkOrderFilter{NeedPlate: true})
}

// ListByProduct devuelve todas las órdenes de un producto, completadas
// incluidas (el historial de fabricación del producto).
func (uc *UseCase) ListByProduct(ctx context.Context, productID string) ([]*entity.WorkOrder, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.workOrders.ListAll(repository.WorkOrderFilter{
		ProductID:        productID,
		IncludeCompleted: true,
	})
}

// ByDeadline agrupa las órdenes abiertas en vencidas e inminentes respecto a
// la fecha límite dada (por defecto hoy).
func (uc *UseCase) ByDeadline(ctx context.Context, deadline time.Time) (*dto.WorkOrdersByDeadline, error) {
	if deadline.IsZero() {
		deadline = time.Now()
	}
	rows, err := uc.workOrders.ListOpenByDeadline(deadline.AddDate(0, 0, 3))
	if err != nil {
		return nil, err
	}
	out := &dto.WorkOrdersByDeadline{
		Overdue:  make([]*entity.WorkOrder, 0),
		Imminent: make([]*entity.WorkOrder, 0),
	}
	for _, wo := range rows {
		if wo.DeliverBy.Before(deadline) {
			out.Overdue = append(out.Overdue, wo)
			continue
		}
		out.Imminent = append(out.Imminent, wo)
	}
	return out, nil
}

// CountByStatus cuenta órdenes por estado en el rango de pedido dado.
func (uc *UseCase) CountByStatus(ctx context.Context, from, to time.Time) (map[entity.WorkOrderStatus]int, error) {
	if from.IsZero() || to.IsZero() {
		from, to = domainwo.DefaultOrderedAtRange(time.Now())
	}
	return uc.workOrders.CountByStatus(from, to)
}

// Stats agrega los conteos por estado y por caras de impresión del rango
// pedido (tablero de carga de planta).
func (uc *UseCase) Stats(ctx context.Context, from, to time.Time) (*dto.WorkOrderStats, error) {
	if from.IsZero() || to.IsZero() {
		from, to = domainwo.DefaultOrderedAtRange(time.Now())
	}
	byStatus, err := uc.workOrders.CountByStatus(from, to)
	if err != nil {
		return nil, err
	}
	byPrintSide, err := uc.workOrders.CountByPrintSide(from, to)
	if err != nil {
		return nil, err
	}
	return &dto.WorkOrderStats{ByStatus: byStatus, ByPrintSide: byPrintSide}, nil
}

// Update modifica una orden existente.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateWorkOrderRequest) (*entity.WorkOrder, error) {
	wo, err := uc.workOrders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrWorkOrderNotFound
	}
	if in.DeliverBy != nil {
		wo.DeliverBy = *in.DeliverBy
	}
	if in.OrderQuantity != nil {
		wo.OrderQuantity = *in.OrderQuantity
	}
	if in.IsUrgent != nil {
		wo.IsUrgent = *in.IsUrgent
	}
	if in.ShouldBePunctual != nil {
		wo.ShouldBePunctual = *in.ShouldBePunctual
	}
	if in.PlateStatus != nil {
		wo.PlateStatus = *in.PlateStatus
	}
	if in.IsPlateReady != nil {
		wo.IsPlateReady = *in.IsPlateReady
	}
	if in.DeliveryMethod != nil {
		wo.DeliveryMethod = *in.DeliveryMethod
	}
	if in.WorkMemo != nil {
		wo.WorkMemo = *in.WorkMemo
	}
	if in.DeliveryMemo != nil {
		wo.DeliveryMemo = *in.DeliveryMemo
	}
	if in.Status != nil {
		if !entity.ValidWorkOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		wo.Status = *in.Status
	}
	wo.UpdatedAt = time.Now()
	if err := uc.workOrders.Update(wo); err != nil {
		return nil, err
	}
	return uc.workOrders.GetByID(id)
}

// BulkUpdate aplica actualizaciones por lote. Cada ítem es una unidad de
// trabajo independiente; los rechazados vuelven con su causa sin afectar al
// resto.
func (uc *UseCase) BulkUpdate(ctx context.Context, items []dto.BulkUpdateWorkOrderRequest) dto.BulkUpdateWorkOrdersResponse {
	out := dto.BulkUpdateWorkOrdersResponse{
		Updated: make([]*entity.WorkOrder, 0, len(items)),
		Failed:  make([]dto.FailedWorkOrderUpdate, 0),
	}
	for _, item := range items {
		wo, err := uc.Update(ctx, item.ID, item.UpdateWorkOrderRequest)
		if err != nil {
			uc.log.Warn().Err(err).Str("id", item.ID).Msg("actualización de orden rechazada")
			out.Failed = append(out.Failed, dto.FailedWorkOrderUpdate{ID: item.ID, Reason: err.Error()})
			continue
		}
		out.Updated = append(out.Updated, wo)
	}
	return out
}

// Delete borra órdenes por ID y devuelve cuántas se borraron.
func (uc *UseCase) Delete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.workOrders.DeleteByIDs(ids)
}
