package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/application/usecase"
)

// PlateHandler maneja las peticiones HTTP de planchas de impresión (protegido).
type PlateHandler struct {
	uc *usecase.PlateUseCase
}

// NewPlateHandler construye el handler.
func NewPlateHandler(uc *usecase.PlateUseCase) *PlateHandler {
	return &PlateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plancha
// @Description  El código correlativo lo asigna el almacenamiento.
// @Tags         plates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlateRequest  true  "Datos de la plancha"
// @Success      201   {object}  entity.Plate
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/plates [post]
func (h *PlateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlateRequest
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
// @Summary      Listar planchas
// @Tags         plates
// @Security     Bearer
// @Produce      json
// @Param        code         query  int     false  "código exacto"
// @Param        accountName  query  string  false  "nombre parcial del cliente"
// @Param        productName  query  string  false  "nombre parcial del producto"
// @Param        name         query  string  false  "nombre parcial de la plancha"
// @Success      200  {object}  dto.ListResponse[entity.Plate]
// @Router       /api/plates [get]
func (h *PlateHandler) List(c *fiber.Ctx) error {
	var q dto.ListPlatesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener plancha por ID
// @Tags         plates
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la plancha"
// @Success      200  {object}  entity.Plate
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plates/{id} [get]
func (h *PlateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plancha
// @Description  Si productIds viene presente reemplaza las asociaciones.
// @Tags         plates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la plancha"
// @Param        body  body  dto.UpdatePlateRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.Plate
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/plates/{id} [patch]
func (h *PlateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlateRequest
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
// @Summary      Borrar planchas por lote
// @Tags         plates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []string  true  "IDs a borrar"
// @Success      200   {object}  map[string]int64
// @Router       /api/plates [delete]
func (h *PlateHandler) Delete(c *fiber.Ctx) error {
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
