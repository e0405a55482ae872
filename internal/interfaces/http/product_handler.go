package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Description  Rechaza duplicados exactos de cliente + nombre + medidas.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  entity.Product
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        accountName  query  string  false  "nombre parcial del cliente"
// @Param        name         query  string  false  "nombre parcial del producto"
// @Success      200  {object}  dto.ListResponse[entity.Product]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ListProductsQuery
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
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.Product
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
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
// @Summary      Borrar productos por lote
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []string  true  "IDs a borrar"
// @Success      200   {object}  map[string]int64
// @Router       /api/products [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
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
