package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/application/usecase"
)

// DeliveryHandler maneja las peticiones HTTP de entregas (protegido).
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear entrega
// @Description  Una entrega ligada a orden de trabajo exige que la orden esté
// @Description  completada. Confirmarla asienta DELIVERED en el libro de stock.
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "Datos de la entrega"
// @Success      201   {object}  entity.Delivery
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entregas por día
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        date    query  string  false  "yyyy-mm-dd (por defecto hoy)"
// @Param        method  query  string  false  "método de entrega"
// @Success      200  {object}  dto.ListResponse[entity.Delivery]
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	var q dto.ListDeliveriesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar entrega
// @Description  Confirmar (isDelivered=true) asienta la salida en el libro de
// @Description  stock; una entrega confirmada no puede reabrirse.
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la entrega"
// @Param        body  body  dto.UpdateDeliveryRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.Delivery
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id} [patch]
func (h *DeliveryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar entregas por lote
// @Description  Las entregas ya confirmadas no pueden borrarse.
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []string  true  "IDs a borrar"
// @Success      200   {object}  map[string]int64
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deliveries [delete]
func (h *DeliveryHandler) Delete(c *fiber.Ctx) error {
	var ids []string
	if err := c.BodyParser(&ids); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	deleted, err := h.uc.Delete(ids)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}
