package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/notable/notes-api/internal/core/domain"
	"github.com/notable/notes-api/internal/core/ports"
)

func newUserServiceForTest(t *testing.T) (*UserService, *stubUserRepo, *domain.User) {
	t.Helper()
	repo := newStubUserRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	now := time.Now().UTC()
	user, err := repo.Create(context.Background(), &domain.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return NewUserService(repo, zerolog.Nop()), repo, user
}

func TestUserFindByEmail_CaseInsensitive(t *testing.T) {
	svc, _, seeded := newUserServiceForTest(t)

	got, err := svc.FindByEmail(context.Background(), "ADA@Example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != seeded.ID {
		t.Fatalf("wrong user returned")
	}
}

func TestUpdateProfile_Sparse(t *testing.T) {
	svc, _, seeded := newUserServiceForTest(t)

	got, err := svc.UpdateProfile(context.Background(), seeded.ID, ports.UpdateProfileInput{
		FirstName: strPtr("Augusta"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.FirstName != "Augusta" {
		t.Fatalf("first name not updated")
	}
	if got.LastName != "Lovelace" {
		t.Fatalf("untouched last name changed")
	}
	if !got.UpdatedAt.After(seeded.UpdatedAt) {
		t.Fatalf("updated_at not stamped")
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	_, err := svc.UpdateProfile(context.Background(), "missing", ports.UpdateProfileInput{FirstName: strPtr("X")})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	svc, repo, seeded := newUserServiceForTest(t)

	if err := svc.UpdatePassword(context.Background(), seeded.ID, "password1", "password2"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	stored := repo.byID[seeded.ID]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password2")) != nil {
		t.Fatalf("new password does not verify")
	}
}

func TestUpdatePassword_WrongCurrent(t *testing.T) {
	svc, repo, seeded := newUserServiceForTest(t)

	err := svc.UpdatePassword(context.Background(), seeded.ID, "wrong", "password2")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	stored := repo.byID[seeded.ID]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password1")) != nil {
		t.Fatalf("hash must be untouched after a failed change")
	}
}
