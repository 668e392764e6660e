// Package service provides the business logic for accounts, sessions,
// orders, and the catalog, delegating persistence to repositories.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/nextbite/nextbite/internal/models"
	"github.com/nextbite/nextbite/internal/repository"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// Create inserts a new account and returns its identifier.
	// Returns repository.ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, account *models.Account) (string, error)
	// FindByEmail fetches the account registered under email.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	// SetResetToken stores a reset token and expiry on the account.
	SetResetToken(ctx context.Context, email, token string, expiry time.Time) error
	// ConsumeResetToken resolves an unexpired reset token to its account.
	ConsumeResetToken(ctx context.Context, token string) (*models.Account, error)
	// UpdatePassword replaces the hash and clears any reset token.
	UpdatePassword(ctx context.Context, email, newHash string) error
}

// AuthService implements signup, login, and the password-reset lifecycle.
type AuthService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens *TokenService
}

// NewAuthService constructs an AuthService. A nil hasher falls back to
// bcrypt at cost 12.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens *TokenService) *AuthService {
	if hasher == nil {
		hasher = BcryptHasher{Cost: 12}
	}
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Signup creates a new account with a hashed password and returns its
// identifier. Returns repository.ErrDuplicateEmail when the email is
// already registered.
func (s *AuthService) Signup(ctx context.Context, name, email, address, password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	return s.repo.Create(ctx, &models.Account{
		Name:         name,
		Email:        email,
		Address:      address,
		PasswordHash: hash,
	})
}

// Login verifies the credentials and returns a signed session token.
// Both an unknown email and a wrong password yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(account.ID.Hex(), account.Email)
}

// ForgotPassword issues a reset token for email and returns it so the
// caller can build the reset link. An unregistered email returns an empty
// token and no error: the HTTP response is identical either way, so the
// endpoint cannot be used to probe which emails exist.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}

	token, expiry, err := GenerateResetToken()
	if err != nil {
		return "", err
	}
	if err := s.repo.SetResetToken(ctx, email, token, expiry); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consumes a reset token and replaces the account password.
// Returns ErrInvalidResetToken when the token is unknown or expired.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	account, err := s.repo.ConsumeResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, account.Email, hash)
}
