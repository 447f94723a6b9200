package ports

import (
	"context"

	"github.com/notable/notes-api/internal/core/domain"
)

// UserRepository defines persistence for user records. Email lookups are
// case-insensitive (addresses are stored lowercased).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}
