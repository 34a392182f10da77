package ratelimit

import (
	"net/http"
	"strings"

	apphttp "VibeFinance/pkg/http"

	"github.com/labstack/echo/v4"
)

// Middleware limits requests per client IP. Routes under skip prefixes are
// never limited. Page requests get a plain 429, API requests the JSON envelope.
func Middleware(l *Limiter, skip ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, p := range skip {
				if strings.HasPrefix(path, p) {
					return next(c)
				}
			}

			if l.Allow(c.RealIP()) {
				return next(c)
			}

			c.Response().Header().Set("Retry-After", "1")
			if strings.HasPrefix(path, "/api/") {
				return apphttp.AppErrorResponse(c, apphttp.TooManyRequestsError())
			}
			return c.String(http.StatusTooManyRequests, "Too many requests, slow down.")
		}
	}
}
