package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vipmudancas/mirante/internal/core/ports"
)

// ContextUserID is the echo context key holding the authenticated user id.
const ContextUserID = "user_id"

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. It returns "" when the header is absent or malformed.
func BearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Auth verifies the bearer token and injects the token subject into context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token de acesso ausente")
			}

			token := BearerToken(authHeader)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Cabeçalho de autorização inválido")
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token inválido ou expirado")
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
