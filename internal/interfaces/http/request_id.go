package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDKey = "request_id"

// RequestID asigna un ID único a cada request, lo expone en el header
// X-Request-ID y deja en locals un sublogger con el ID ya atado. Al terminar
// escribe la línea de acceso (método, ruta, status, duración).
func RequestID(base *zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)

		reqLog := base.With().Str(requestIDKey, id).Logger()
		c.Locals(requestIDKey, &reqLog)

		start := time.Now()
		err := c.Next()

		reqLog.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}

// ReqLogger devuelve el sublogger del request, o uno vacío si el middleware no corrió.
func ReqLogger(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(requestIDKey).(*zerolog.Logger); ok {
		return l
	}
	l := zerolog.Nop()
	return &l
}
