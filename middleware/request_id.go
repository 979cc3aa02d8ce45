// middleware/request_id.go
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderXRequestID = "X-Request-ID"

// RequestID tags every request with a correlation id, reusing the client's
// when one is sent.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Set("requestId", requestID)
			c.Response().Header().Set(HeaderXRequestID, requestID)
			return next(c)
		}
	}
}
