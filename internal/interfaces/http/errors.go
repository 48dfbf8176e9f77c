package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/domain"
)

// respondError traduce la taxonomía de errores del dominio a HTTP.
// ServerError conserva el status y el mensaje del backend tal cual; los
// fallos de transporte y de decodificación se agrupan en un 502 genérico.
func respondError(c *fiber.Ctx, err error) error {
	var (
		vErr  *domain.ValidationError
		trErr *domain.TransitionError
		sErr  *domain.ServerError
		tpErr *domain.TransportError
		dErr  *domain.DecodeError
	)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return respondUnauthorized(c)
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrConfirmRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: domain.ErrConfirmRequired.Error()})
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message})
	case errors.As(err, &trErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "TRANSITION", Message: trErr.Error()})
	case errors.As(err, &sErr):
		return c.Status(sErr.StatusCode).JSON(dto.ErrorResponse{Code: "SERVER", Message: sErr.Message})
	case errors.As(err, &tpErr), errors.As(err, &dErr):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: "no se pudo obtener respuesta del backend, intente de nuevo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
