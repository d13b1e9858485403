package serverutils

import (
	"errors"

	"imobiliaria-crm-be/internal/pkg/apperror"
	"imobiliaria-crm-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware tags every request with a correlation id, reused from
// the incoming header when the caller already set one.
func RequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		reqID := ctx.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx.Locals("request_id", reqID)
		ctx.Set(RequestIDHeader, reqID)
		return ctx.Next()
	}
}

// ErrorHandlerMiddleware maps the service error taxonomy onto the HTTP status
// table: NotFound -> 404, ValidationError and InvalidReference -> 400,
// anything else -> 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			status := fiber.StatusBadRequest
			if appErr.Kind == apperror.KindNotFound {
				status = fiber.StatusNotFound
			}
			return ctx.Status(status).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"request_id": ctx.Locals("request_id"),
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"error":      err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Erro interno do servidor."))
	}
}
