package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/application/usecase"
)

// QuoteHandler maneja las peticiones HTTP de cotizaciones (protegido).
type QuoteHandler struct {
	uc *usecase.QuoteUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cotización
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "Datos de la cotización"
// @Success      201   {object}  entity.Quote
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cotizaciones
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.ListResponse[entity.Quote]
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización por ID
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200  {object}  entity.Quote
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cotización
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la cotización"
// @Param        body  body  dto.UpdateQuoteRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.Quote
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [patch]
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar cotizaciones por lote
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []string  true  "IDs a borrar"
// @Success      200   {object}  map[string]int64
// @Router       /api/quotes [delete]
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
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
