package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP de inventario (protegido).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar stock por producto
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.ListResponse[entity.Stock]
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajustar stock por lote (conteo físico o desecho)
// @Description  Balance es el saldo absoluto resultante; el delta contra el
// @Description  último asiento queda registrado como STOCKTAKING (por defecto)
// @Description  o DISPOSED. Los ajustes fallidos vuelven en failed sin afectar
// @Description  al resto del lote.
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.AdjustStockRequest  true  "Ajustes"
// @Success      200   {object}  map[string]interface{}
// @Router       /api/stocks [patch]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var items []dto.AdjustStockRequest
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere al menos un ajuste"})
	}
	updated, failed := h.uc.Adjust(c.Context(), items)
	return c.JSON(fiber.Map{"updated": updated, "failed": failed})
}

// History godoc
// @Summary      Historial del libro de stock
// @Description  Asientos en orden cronológico; cada Balance es el saldo
// @Description  resultante tras aplicar su Quantity al asiento anterior.
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del stock"
// @Success      200  {array}   entity.StockHistory
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/{id}/history [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
