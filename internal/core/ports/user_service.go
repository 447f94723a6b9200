package ports

import (
	"context"

	"github.com/notable/notes-api/internal/core/domain"
)

// UpdateProfileInput is a sparse profile patch: only first and last name may
// change through this path; nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
}

// UserService exposes user directory operations.
type UserService interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error
}
