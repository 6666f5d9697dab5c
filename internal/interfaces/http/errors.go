package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/domain"
)

// errorStatus mapea errores de dominio a status HTTP y código de error.
func errorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "empresa no encontrada"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, "DUPLICATE_RUC", domain.ErrDuplicate.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest, "DUPLICATE_EMAIL", domain.ErrEmailAlreadyExists.Error()
	case errors.Is(err, domain.ErrStorageWrite):
		return fiber.StatusInternalServerError, "STORAGE_WRITE_FAILED", domain.ErrStorageWrite.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity, "VALIDATION", err.Error()
	default:
		return fiber.StatusInternalServerError, "INTERNAL", "error interno"
	}
}

// ErrorHandler responde con dto.ErrorResponse también para errores propios de Fiber
// (ruta inexistente, cuerpo demasiado grande, etc.).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: httpCode(fe.Code), Message: fe.Message})
	}
	status, code, msg := errorStatus(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func httpCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL"
	}
}
