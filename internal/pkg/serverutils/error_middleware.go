package serverutils

import (
	"rag-chat-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewRecoverMiddleware turns handler panics into 500 responses instead of
// dropping the connection.
func NewRecoverMiddleware() fiber.Handler {
	return recover.New()
}

// NewErrorHandlerMiddleware catches errors that escape controllers and
// renders them in the standard envelope.
func NewErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"
		if fiberErr, ok := err.(*fiber.Error); ok {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		log.Error("http", "Unhandled request error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"status": code,
			"error":  err.Error(),
		})

		return ctx.Status(code).JSON(fiber.Map{
			"success": false,
			"code":    code,
			"message": message,
		})
	}
}
