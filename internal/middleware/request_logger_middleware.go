package middleware

import (
	"time"

	"github.com/fadilmartias/cv-analysis-api/internal/logger"
	"github.com/fadilmartias/cv-analysis-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID tags every request with a UUID, echoed in the X-Request-ID header.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

// GetRequestID returns the id assigned by RequestID, or "" when it did not run.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	return id
}

// RequestLogger stores a request-scoped logger in the user context so that
// downstream code can log through logger.Ctx. Must run after RequestID.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		l := logger.Logger.With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		c.SetUserContext(logger.WithContext(c.UserContext(), l))

		err := c.Next()

		// A returned error is rendered by the app ErrorHandler after this
		// middleware, so the response status is not final yet.
		status := c.Response().StatusCode()
		event := l.Info()
		if err != nil {
			status = util.HTTPStatus(err)
			event = l.Warn().Err(err)
		}
		event.
			Int("status", status).
			Dur("took", time.Since(start)).
			Msg("request handled")
		return err
	}
}
