package middleware

import (
	"errors"
	"net/http"
	"time"

	"timestamp_api_go/services"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that did not match a registered route
const unmatchedRoute = "unmatched"

// Metrics records request count and latency for every request, labelled by
// route template rather than raw path so date strings do not explode cardinality.
func Metrics(m *services.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}

			m.ObserveRequest(c.Request().Method, route, statusOf(c, err), time.Since(start))
			return err
		}
	}
}

// statusOf returns the status the client will see. Errors are written later by
// echo's HTTPErrorHandler, so the response status is not set yet.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
