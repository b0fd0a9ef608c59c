package middleware

import (
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"collabwish/pkg/logger"
)

type AuthMiddleware struct {
	authClient *auth.Client
}

func NewAuthMiddleware(authClient *auth.Client) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

// OptionalVerify verifies a Bearer ID token when one is present and
// stashes the Firebase UID in the request context. The legacy routes
// are keyed by email/baseId in the body, so a missing or invalid token
// does not block the request.
func (m *AuthMiddleware) OptionalVerify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return next(c)
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
		if err != nil {
			logger.Debug("Ignoring invalid ID token: %v", err)
			return next(c)
		}

		c.Set("uid", token.UID)
		return next(c)
	}
}
