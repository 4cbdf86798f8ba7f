package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func SetupMiddlewares(app *fiber.App, sugar *zap.SugaredLogger) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RequestLogger(sugar))
}

// RequestLogger tags every request with an X-Request-ID and logs method,
// path, status and duration once the handler chain returns.
func RequestLogger(sugar *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		start := time.Now()
		err := c.Next()
		sugar.Infow("request",
			"id", id,
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"dur", time.Since(start),
		)
		return err
	}
}
