package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fabrica-api/internal/application/auth"
	"github.com/jhoicas/Fabrica-api/internal/application/dto"
)

// AuthHandler maneja autenticación y gestión de usuarios.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Profile(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.UserResponse]
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.ListUsers(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateUser godoc
// @Summary      Actualizar usuario
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [patch]
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateUser(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Borrar usuario
// @Tags         auth
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
