package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/application/workorder"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	domainwo "github.com/jhoicas/Fabrica-api/internal/domain/workorder"
)

// SheetGenerator genera la hoja de producción imprimible de una orden.
type SheetGenerator interface {
	GenerateWorkOrderSheet(wo *entity.WorkOrder, product *entity.Product) ([]byte, error)
}

// WorkOrderHandler maneja las peticiones HTTP de órdenes de trabajo (protegido).
type WorkOrderHandler struct {
	uc     *workorder.UseCase
	sheets SheetGenerator
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *workorder.UseCase, sheets SheetGenerator) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc, sheets: sheets}
}

// Create godoc
// @Summary      Crear orden de trabajo
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  entity.WorkOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-orders [post]
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.AccountID == "" || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "accountId y productId son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Import godoc
// @Summary      Importar órdenes por lote
// @Description  Cada fila resuelve su producto por cliente + nombre + medidas.
// @Description  201 si todas crearon, 202 si hubo fallos parciales, 500 si no creó ninguna.
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.ImportWorkOrderRequest  true  "Filas a importar"
// @Success      201   {object}  dto.ImportWorkOrdersResponse
// @Success      202   {object}  dto.ImportWorkOrdersResponse
// @Failure      500   {object}  dto.ImportWorkOrdersResponse
// @Router       /api/work-orders/import [post]
func (h *WorkOrderHandler) Import(c *fiber.Ctx) error {
	var rows []dto.ImportWorkOrderRequest
	if err := c.BodyParser(&rows); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere al menos una fila"})
	}
	out := h.uc.Import(c.Context(), rows)
	switch {
	case out.CreatedCount <= 0:
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	case len(out.FailedList) > 0:
		return c.Status(fiber.StatusAccepted).JSON(out)
	default:
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// List godoc
// @Summary      Listar órdenes de trabajo
// @Description  Sin rango de fechas se usan los últimos 14 días; completadas
// @Description  excluidas salvo includeCompleted=true.
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        orderedFrom       query  string  false  "yyyy-mm-dd"
// @Param        orderedTo         query  string  false  "yyyy-mm-dd"
// @Param        accountName       query  string  false  "nombre parcial del cliente"
// @Param        productName       query  string  false  "nombre parcial del producto"
// @Param        includeCompleted  query  bool    false  "incluir completadas"
// @Param        all               query  bool    false  "sin paginar (exportación)"
// @Success      200  {object}  dto.ListResponse[entity.WorkOrder]
// @Router       /api/work-orders [get]
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	var q dto.ListWorkOrdersQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	if c.QueryBool("all") {
		items, err := h.uc.ListAll(c.Context(), q)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(items)
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByDeadline godoc
// @Summary      Órdenes por vencimiento
// @Description  Agrupa las órdenes abiertas en vencidas e inminentes respecto
// @Description  a la fecha dada (por defecto hoy).
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        deadline  query  string  false  "yyyy-mm-dd"
// @Success      200  {object}  dto.WorkOrdersByDeadline
// @Router       /api/work-orders/deadline [get]
func (h *WorkOrderHandler) ByDeadline(c *fiber.Ctx) error {
	var deadline time.Time
	if s := c.Query("deadline"); s != "" {
		var err error
		deadline, err = time.Parse(domainwo.DateLayout, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "deadline inválido, formato yyyy-mm-dd"})
		}
	}
	out, err := h.uc.ByDeadline(c.Context(), deadline)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// NeedPlate godoc
// @Summary      Órdenes pendientes de plancha
// @Description  Órdenes abiertas cuya plancha aún no está lista, de cualquier
// @Description  fecha (la cola del área de grabado).
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.WorkOrder
// @Router       /api/work-orders/need-plate [get]
func (h *WorkOrderHandler) NeedPlate(c *fiber.Ctx) error {
	rows, err := h.uc.ListNeedingPlate(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// ByProduct godoc
// @Summary      Órdenes de un producto
// @Description  Todas las órdenes de un producto, completadas incluidas.
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  entity.WorkOrder
// @Router       /api/work-orders/product/{productId} [get]
func (h *WorkOrderHandler) ByProduct(c *fiber.Ctx) error {
	rows, err := h.uc.ListByProduct(c.Context(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Stats godoc
// @Summary      Conteos de órdenes por estado y caras de impresión
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "yyyy-mm-dd"
// @Param        to    query  string  false  "yyyy-mm-dd"
// @Success      200  {object}  dto.WorkOrderStats
// @Router       /api/work-orders/stats [get]
func (h *WorkOrderHandler) Stats(c *fiber.Ctx) error {
	var from, to time.Time
	var err error
	if s := c.Query("from"); s != "" {
		if from, err = time.Parse(domainwo.DateLayout, s); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, formato yyyy-mm-dd"})
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = time.Parse(domainwo.DateLayout, s); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, formato yyyy-mm-dd"})
		}
	}
	out, err := h.uc.Stats(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  entity.WorkOrder
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [get]
func (h *WorkOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.JSON(out)
}

// Sheet godoc
// @Summary      Hoja de producción (PDF)
// @Tags         work-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/sheet [get]
func (h *WorkOrderHandler) Sheet(c *fiber.Ctx) error {
	wo, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if wo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	pdfBytes, err := h.sheets.GenerateWorkOrderSheet(wo, wo.Product)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `inline; filename="`+wo.ID+`.pdf"`)
	return c.Send(pdfBytes)
}

// Update godoc
// @Summary      Actualizar orden
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la orden"
// @Param        body  body  dto.UpdateWorkOrderRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.WorkOrder
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [patch]
func (h *WorkOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BulkUpdate godoc
// @Summary      Actualizar órdenes por lote
// @Description  Cada ítem es independiente; los rechazados vuelven en failed
// @Description  con su causa sin afectar al resto.
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.BulkUpdateWorkOrderRequest  true  "Actualizaciones"
// @Success      200   {object}  dto.BulkUpdateWorkOrdersResponse
// @Router       /api/work-orders/bulk [patch]
func (h *WorkOrderHandler) BulkUpdate(c *fiber.Ctx) error {
	var items []dto.BulkUpdateWorkOrderRequest
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere al menos un ítem"})
	}
	return c.JSON(h.uc.BulkUpdate(c.Context(), items))
}

// Complete godoc
// @Summary      Completar órdenes por lote
// @Description  CompletedQuantity es acumulado; el delta contra lo registrado
// @Description  se asienta como MANUFACTURED en el libro de stock. Las que
// @Description  fallan vuelven en failed con su causa, sin afectar al resto.
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CompleteWorkOrderRequest  true  "Completados"
// @Success      200   {object}  dto.CompleteWorkOrdersResponse
// @Router       /api/work-orders/complete [patch]
func (h *WorkOrderHandler) Complete(c *fiber.Ctx) error {
	var items []dto.CompleteWorkOrderRequest
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere al menos un ítem"})
	}
	return c.JSON(h.uc.Complete(c.Context(), items))
}

// Delete godoc
// @Summary      Borrar órdenes por lote
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []string  true  "IDs a borrar"
// @Success      200   {object}  map[string]int64
// @Router       /api/work-orders [delete]
func (h *WorkOrderHandler) Delete(c *fiber.Ctx) error {
	var ids []string
	if err := c.BodyParser(&ids); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	deleted, err := h.uc.Delete(c.Context(), ids)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}
