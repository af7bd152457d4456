// Package memory holds process-local repositories used when STORAGE_DRIVER is
// "memory" (local development without MongoDB) and by handler tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	r.byEmail[stored.Email] = &stored
	r.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

type LeadRepository struct {
	mu    sync.Mutex
	leads []domain.Lead
}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{}
}

func (r *LeadRepository) Insert(_ context.Context, lead *domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead.ID = uuid.NewString()
	r.leads = append(r.leads, *lead)
	return nil
}

// All returns a snapshot of every stored lead.
func (r *LeadRepository) All() []domain.Lead {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]domain.Lead(nil), r.leads...)
}
