package auth

import (
	"context"

	"github.com/mmynk/rally/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password,
// wallet signatures, OAuth, etc.) without changing the service layer code.
type Authenticator interface {
	// Register creates a new user with the given handle and credential.
	Register(ctx context.Context, handle, displayName, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, handle, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
