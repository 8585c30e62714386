package middleware

import (
	"time"

	"skill-matrix/internal/pkg/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestIDKey = "request_id"
)

type AccessLogMiddleware struct {
	log logger.Logger
}

func NewAccessLogMiddleware(log logger.Logger) *AccessLogMiddleware {
	if log == nil {
		log = logger.NewNop()
	}
	return &AccessLogMiddleware{log: log}
}

// Middleware tags each request with an id, reusing the caller's X-Request-ID
// when present, and logs one line once the handler chain returns.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		m.log.Info(c.Context(), "http access",
			logger.String("rid", rid),
			logger.String("ip", c.IP()),
			logger.String("method", c.Method()),
			logger.String("path", c.OriginalURL()),
			logger.Int("status", c.Response().StatusCode()),
			logger.Any("latency", time.Since(start)),
			logger.Int("req_bytes", c.Request().Header.ContentLength()),
			logger.Int("resp_bytes", len(c.Response().Body())),
			logger.String("ua", c.Get("User-Agent")),
		)

		return err
	}
}
