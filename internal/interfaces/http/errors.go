package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

// Códigos de error del contrato HTTP.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeValidation        = "VALIDATION"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInvalidBody       = "INVALID_BODY"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInternal          = "INTERNAL"
)

// errorResponder traduce errores de dominio a respuestas HTTP. Un único punto de mapeo.
type errorResponder struct {
	log *logger.Logger
}

func (r errorResponder) write(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: CodeInsufficientStock, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: CodeForbidden, Message: err.Error()})
	}
	r.log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", GetRequestID(c)).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "error interno"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}

// fiberErrorHandler respuesta uniforme para errores que no pasan por un handler (404 de ruta, panics).
func fiberErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInternal
			switch fe.Code {
			case fiber.StatusNotFound:
				code = CodeNotFound
			case fiber.StatusMethodNotAllowed, fiber.StatusBadRequest:
				code = CodeValidation
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		return errorResponder{log: log}.write(c, err)
	}
}
