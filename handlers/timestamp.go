package handlers

import (
	"net/http"
	"net/url"

	"timestamp_api_go/services"

	"github.com/labstack/echo/v4"
)

// DateStringParam is the path parameter holding the date to resolve
const DateStringParam = "date_string"

// TimestampHandler resolves the optional :date_string path parameter.
// The response is always 200; invalid dates are reported in the body.
func TimestampHandler(resolver *services.Resolver) echo.HandlerFunc {
	return func(c echo.Context) error {
		dateString := c.Param(DateStringParam)
		// Params come from RawPath, still escaped, only when the request has one
		if c.Request().URL.RawPath != "" {
			if unescaped, err := url.PathUnescape(dateString); err == nil {
				dateString = unescaped
			}
		}

		return c.JSON(http.StatusOK, resolver.Resolve(dateString))
	}
}
