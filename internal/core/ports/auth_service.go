package ports

import (
	"context"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	WhoAmI(ctx context.Context, token string) (*domain.User, error)
}

// TokenVerifier resolves a session token to the user ID it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
