package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/anthonyrh/techstore-api/internal/application/dto"
	"github.com/anthonyrh/techstore-api/internal/domain"
)

// handleError traduce la taxonomía de errores de dominio al envelope HTTP único.
// Cualquier error no reconocido es un fallo del almacén: se loguea completo en el
// servidor y el cliente recibe un mensaje genérico, nunca el detalle.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos o incompletos", Code: "VALIDATION"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "recurso duplicado", Code: "DUPLICATE"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "recurso no encontrado", Code: "NOT_FOUND"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Stock insuficiente", Code: "INSUFFICIENT_STOCK"})
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error de base de datos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor", Code: "INTERNAL"})
	}
}
