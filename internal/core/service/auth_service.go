package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/notable/notes-api/internal/core/domain"
	"github.com/notable/notes-api/internal/core/ports"
)

// LoginLimiter abstracts the failed-login attempt store (Redis).
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements signup, login, and token issuing.
type AuthService struct {
	users     ports.UserRepository
	limiter   LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, limiter LoginLimiter, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		limiter:   limiter,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Signup creates an account and returns a fresh token alongside the user.
// The email is lowercased before storage so later comparisons are
// case-insensitive; a duplicate surfaces as ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(created)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user signed up")
	return token, created, nil
}

// Login verifies the credential and returns a fresh token. A wrong email and
// a wrong password produce the same ErrInvalidCredentials so the response
// leaks nothing about account existence. Repeated failures within the
// limiter's window block further attempts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(email)

	blocked, err := s.limiter.TooManyAttempts(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login limiter check failed, processing anyway")
	} else if blocked {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if recErr := s.limiter.RecordFailure(ctx, email); recErr != nil {
			s.logger.Warn().Err(recErr).Msg("failed to record login failure")
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	if resetErr := s.limiter.Reset(ctx, email); resetErr != nil {
		s.logger.Warn().Err(resetErr).Msg("failed to reset login attempts")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
