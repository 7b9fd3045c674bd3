package middleware

import (
	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// TraceIDHeader carries the trace id in and out of the API
	TraceIDHeader = "X-Trace-ID"

	// TraceIDLocalKey is where the trace id lives in Fiber locals
	TraceIDLocalKey = "traceID"
)

// TraceID adopts the caller's trace id or mints one, echoes it on the
// response, and threads it through the request context so every log line in
// the request shares it.
func (m *Middleware) TraceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set(TraceIDHeader, traceID)
		c.Locals(TraceIDLocalKey, traceID)

		// Downstream loggers pick the id up from the user context
		c.SetUserContext(logger.ContextWithTraceID(c.Context(), traceID))

		return c.Next()
	}
}

// GetTraceID reads the trace id stored by the TraceID middleware; empty when
// the middleware did not run.
func GetTraceID(c *fiber.Ctx) string {
	if traceID, ok := c.Locals(TraceIDLocalKey).(string); ok {
		return traceID
	}
	return ""
}
