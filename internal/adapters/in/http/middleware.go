package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"dispatch/internal/pkg/metrics"
)

// MetricsMiddleware records the latency of every request under its route
// template, so /api/v1/drivers/7 and /api/v1/drivers/8 share one series.
func MetricsMiddleware(m metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			m.ObserveHTTPRequestDuration(
				ctx.Request().Method,
				ctx.Path(),
				strconv.Itoa(ctx.Response().Status),
				time.Since(start),
			)

			return err
		}
	}
}
