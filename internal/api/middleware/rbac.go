package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

// ContextRole is the echo context key holding the authenticated user's role.
const ContextRole = "role"

// UserLoader resolves a user id to its stored record.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// RBAC enforces role-based access control. It must run after Auth: the role
// is looked up from the stored user so a demoted account loses access without
// waiting for its token to expire.
func RBAC(users UserLoader, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(ContextUserID).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token de acesso ausente")
			}

			user, err := users.GetByID(c.Request().Context(), userID)
			if errors.Is(err, domain.ErrUserNotFound) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Usuário não encontrado")
			}
			if err != nil {
				return err
			}

			if _, ok := allowed[user.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Acesso negado"})
			}

			c.Set(ContextRole, user.Role)
			return next(c)
		}
	}
}
