package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Middleware records request count and latency. The route label is echo's
// route template so ids do not multiply series.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			HTTPRequests.WithLabelValues(method, route, status).Inc()
			HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
