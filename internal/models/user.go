package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered identity. The ID is the identity used everywhere
// else: squad members, stream parties, voters and ledger addresses.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Handle is the unique login name.
	Handle string

	// DisplayName is shown to other squad members.
	DisplayName string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the user registered.
	CreatedAt int64
}

// NewUser creates a user with a fresh identity.
func NewUser(handle, displayName, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Handle:       handle,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
