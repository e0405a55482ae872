package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/application/usecase"
)

// AccountHandler maneja las peticiones HTTP de clientes (protegido).
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "Datos del cliente"
// @Success      201   {object}  entity.Account
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
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
// @Summary      Listar clientes
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Param        name          query  string  false  "nombre parcial"
// @Param        withContacts  query  bool    false  "incluir contactos"
// @Success      200  {object}  dto.ListResponse[entity.Account]
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	var q dto.ListAccountsQuery
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
// @Summary      Obtener cliente por ID
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  entity.Account
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Description  Si contacts viene presente reemplaza la lista completa.
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del cliente"
// @Param        body  body  dto.UpdateAccountRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.Account
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [patch]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
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
// @Summary      Borrar clientes por lote
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []string  true  "IDs a borrar"
// @Success      200   {object}  map[string]int64
// @Router       /api/accounts [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
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
