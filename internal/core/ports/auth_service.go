package ports

import (
	"context"

	"github.com/notable/notes-api/internal/core/domain"
)

// SignupInput carries the data needed to open an account.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService issues and honours bearer credentials.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
