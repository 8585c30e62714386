package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// HTTPObserver records one finished request.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, dur time.Duration)
}

type MetricsMiddleware struct {
	obs HTTPObserver
}

func NewMetricsMiddleware(obs HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{obs: obs}
}

// Middleware labels requests by route pattern, not raw path, to keep label
// cardinality bounded.
func (m *MetricsMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.obs == nil {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status, _, _ = normalizeError(err)
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}

		m.obs.ObserveHTTP(c.Method(), route, status, time.Since(start))
		return err
	}
}
