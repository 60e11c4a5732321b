package correlation

import (
	"github.com/labstack/echo/v4"
)

// Middleware reads the request id from the configured header (generating one
// when absent), echoes it back on the response, and installs it into the
// request context for services and the outbox enqueue to pick up.
//
// Must be registered before any handler that calls RequestID.
func Middleware(header string) echo.MiddlewareFunc {
	if header == "" {
		header = DefaultHeader
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(header)
			if rid == "" {
				rid = NewRequestID()
			}
			c.Response().Header().Set(header, rid)
			c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), rid)))
			return next(c)
		}
	}
}
