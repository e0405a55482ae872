package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
)

// respondError mapea errores de dominio a status HTTP. Todo lo no reconocido
// es un 500 con el mensaje del error.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrWorkOrderNotFound),
		errors.Is(err, domain.ErrSeqNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
