package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

func newTestStore() (*CredentialStore, *stubUserRepo) {
	repo := newStubUserRepo()
	store := NewCredentialStore(repo)
	store.cost = bcrypt.MinCost
	return store, repo
}

func TestCredentialStore_CreateHashesPassword(t *testing.T) {
	store, repo := newTestStore()

	id, err := store.Create(context.Background(), "  Ana@VIP.com ", "pass123", "Ana")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	stored := repo.users["ana@vip.com"]
	if stored == nil || stored.ID != id {
		t.Fatalf("expected user stored under normalized email, got %+v", repo.users)
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestCredentialStore_CreateConflictIsCaseInsensitive(t *testing.T) {
	store, _ := newTestStore()

	if _, err := store.Create(context.Background(), "ana@vip.com", "a", "Ana"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := store.Create(context.Background(), "ANA@vip.com", "b", "Ana 2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestCredentialStore_CreateWithUnknownRole(t *testing.T) {
	store, _ := newTestStore()

	if _, err := store.CreateWithRole(context.Background(), "x@vip.com", "a", "X", "guest"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestCredentialStore_Verify(t *testing.T) {
	store, _ := newTestStore()
	id, _ := store.Create(context.Background(), "bia@vip.com", "right", "Bia")

	user, err := store.Verify(context.Background(), "BIA@vip.com", "right")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if user.ID != id {
		t.Fatalf("expected user %s, got %s", id, user.ID)
	}

	_, wrongPassErr := store.Verify(context.Background(), "bia@vip.com", "wrong")
	_, unknownErr := store.Verify(context.Background(), "nobody@vip.com", "right")
	if wrongPassErr != domain.ErrInvalidCredentials || unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v and %v", wrongPassErr, unknownErr)
	}
}

func TestCredentialStore_GetByID(t *testing.T) {
	store, _ := newTestStore()
	id, _ := store.Create(context.Background(), "caio@vip.com", "pw", "Caio")

	user, err := store.GetByID(context.Background(), id)
	if err != nil || user.Email != "caio@vip.com" {
		t.Fatalf("GetByID(%s) = %+v, %v", id, user, err)
	}
	if _, err := store.GetByID(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
