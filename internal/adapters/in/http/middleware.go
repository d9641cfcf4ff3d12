package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// apiKeyHeader carries the client credential on every API request.
const apiKeyHeader = "X-Api-Key"

// APIKeyMiddleware rejects requests whose X-Api-Key header does not match
// the configured key. An empty configured key disables the check, which is
// the expected mode for local development.
func APIKeyMiddleware(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if apiKey == "" {
				return next(ctx)
			}

			provided := ctx.Request().Header.Get(apiKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or missing API key",
				})
			}

			return next(ctx)
		}
	}
}
