package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vipmudancas/mirante/internal/core/domain"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

// dummyHash is compared against when the email is unknown so that a miss
// costs the same bcrypt work as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("mirante-dummy-password"), bcrypt.DefaultCost)

// CredentialStore owns user records and password verification.
type CredentialStore struct {
	repo ports.UserRepository
	cost int
}

func NewCredentialStore(repo ports.UserRepository) *CredentialStore {
	return &CredentialStore{repo: repo, cost: bcrypt.DefaultCost}
}

// Create registers a user with the default vendedor role.
func (s *CredentialStore) Create(ctx context.Context, email, password, name string) (string, error) {
	return s.CreateWithRole(ctx, email, password, name, domain.RoleVendedor)
}

// CreateWithRole registers a user with an explicit role.
func (s *CredentialStore) CreateWithRole(ctx context.Context, email, password, name, role string) (string, error) {
	if !domain.ValidRole(role) {
		return "", fmt.Errorf("create user: unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        domain.NormalizeEmail(email),
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// Verify checks a password against the stored hash. Unknown emails and wrong
// passwords both yield domain.ErrInvalidCredentials.
func (s *CredentialStore) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *CredentialStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}
