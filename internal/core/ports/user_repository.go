package ports

import (
	"context"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

// UserRepository defines the persistence operations backing the credential store.
// Emails are stored already normalized; implementations match them exactly.
type UserRepository interface {
	// Create stores a new user and returns it with its ID populated.
	// Returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
