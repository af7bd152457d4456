package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// AuthService implements login, registration and identity lookup on top of
// the credential store and the token issuer.
type AuthService struct {
	store  *CredentialStore
	tokens *TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(store *CredentialStore, tokens *TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, error) {
	if blank(email) || password == "" || blank(name) {
		return "", domain.ErrMissingFields
	}
	if len([]byte(password)) > maxPasswordBytes {
		return "", domain.ErrPasswordTooLong
	}

	id, err := s.store.Create(ctx, email, password, name)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", id).Str("email", domain.NormalizeEmail(email)).Msg("user registered")
	return id, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if blank(email) || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.store.Verify(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.log.Info().Str("email", domain.NormalizeEmail(email)).Msg("login rejected")
		}
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

// WhoAmI resolves a bearer token to the user it was issued for.
func (s *AuthService) WhoAmI(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	return s.store.GetByID(ctx, userID)
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if blank(email) || password == "" {
		return nil
	}

	_, err := s.store.CreateWithRole(ctx, email, password, "Administrador", domain.RoleAdmin)
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	if err != nil {
		return err
	}

	s.log.Info().Str("email", domain.NormalizeEmail(email)).Msg("bootstrap admin created")
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
