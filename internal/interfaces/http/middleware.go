package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/logi-core/inventory-service/pkg/logger"
)

// RequestLogger registra cada petición HTTP con método, ruta, status y
// duración, usando el logger estructurado de la app.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		} else if status >= fiber.StatusBadRequest {
			evt = log.Warn()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
