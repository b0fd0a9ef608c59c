package router

import (
	"github.com/labstack/echo/v4"

	"collabwish/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	SetupUserRouter(e, authMiddleware, rateLimiter)
	SetupHealthRouter(e)
}
