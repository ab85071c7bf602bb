package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/domain"
)

// handleError traduce errores de dominio a respuestas HTTP. Los handlers lo
// usan como salida por defecto; los casos con mensaje propio se atienden antes.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida para este rol"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "la solicitud ya no está en el estado esperado"})
	case errors.Is(err, domain.ErrProfileIncomplete):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROFILE_INCOMPLETE", Message: "el perfil debe completarse antes de aceptar el contrato"})
	case errors.Is(err, domain.ErrAgreementAccepted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "AGREEMENT_ACCEPTED", Message: "el contrato ya fue aceptado"})
	case errors.Is(err, domain.ErrAgreementPending):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "AGREEMENT_PENDING", Message: "el contrato aún no ha sido aceptado"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual del recurso"})
	default:
		// El detalle del error queda solo en el log; al cliente nunca le llega
		// el texto interno (SQL, hosts, drivers).
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno no mapeado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}
