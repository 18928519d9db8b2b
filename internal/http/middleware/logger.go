package middleware

import (
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"folio/internal/logger"
)

// Logger logs each HTTP request as one JSON line with
// request_id, method, path, status, latency (milliseconds) and trace_id when a span is active.
func Logger(log logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := []logger.Field{
			logger.String("request_id", GetRequestID(c)),
			logger.String("method", c.Method()),
			logger.String("path", c.Path()),
			logger.Int("status", responseStatus(c, err)),
			logger.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			fields = append(fields, logger.String("trace_id", sc.TraceID().String()))
		}
		log.Info("http_request", fields...)

		return err
	}
}

// LoggerWithWriter is Logger backed by a JSON logger writing to w with timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logger.New(logger.Config{Level: "info", Location: loc, Output: w}))
}

// responseStatus is the status the error handler will send for err.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
