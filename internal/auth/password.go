package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/rally/internal/models"
	"github.com/mmynk/rally/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid handle or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidHandle      = errors.New("handle must be 3-32 characters of a-z, 0-9, '_' or '-'")
	ErrHandleTaken        = errors.New("handle already registered")
)

var handlePattern = regexp.MustCompile(`^[a-z0-9_-]{3,32}$`)

// UserStorage defines the interface for user persistence operations.
// This allows the authenticator to be independent of the storage implementation.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByHandle(ctx context.Context, handle string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage UserStorage
	cost    int
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
		cost:    bcrypt.DefaultCost,
	}
}

// WithCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func (a *PasswordAuthenticator) WithCost(cost int) *PasswordAuthenticator {
	a.cost = cost
	return a
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new user with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, handle, displayName, credential string) (*models.User, error) {
	if !handlePattern.MatchString(handle) {
		return nil, ErrInvalidHandle
	}
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	existing, err := a.storage.GetUserByHandle(ctx, handle)
	if err == nil && existing != nil {
		return nil, ErrHandleTaken
	}
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up handle: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if displayName == "" {
		displayName = handle
	}
	user := models.NewUser(handle, displayName, string(hashedPassword))

	if err := a.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrHandleTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the handle and password, returning the user if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, handle, credential string) (*models.User, error) {
	user, err := a.storage.GetUserByHandle(ctx, handle)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
