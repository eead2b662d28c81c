package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/rally/internal/models"
	"github.com/mmynk/rally/internal/storage"
)

type memoryUsers struct {
	byHandle map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byHandle: map[string]*models.User{}}
}

func (m *memoryUsers) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := m.byHandle[user.Handle]; ok {
		return storage.ErrAlreadyExists
	}
	m.byHandle[user.Handle] = user
	return nil
}

func (m *memoryUsers) GetUserByHandle(_ context.Context, handle string) (*models.User, error) {
	if u, ok := m.byHandle[handle]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", handle, storage.ErrNotFound)
}

func (m *memoryUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byHandle {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := models.NewUser("alice", "Alice", "")

	token, err := m.Generate(user)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Identity())
	assert.Equal(t, "alice", claims.Handle)
}

func TestJWTRejects(t *testing.T) {
	user := models.NewUser("alice", "Alice", "")

	expired, err := NewJWTManager("test-secret", -time.Minute).Generate(user)
	require.NoError(t, err)
	foreign, err := NewJWTManager("other-secret", time.Hour).Generate(user)
	require.NoError(t, err)

	m := NewJWTManager("test-secret", time.Hour)
	for name, token := range map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"garbage":      "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Validate(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryUsers()).WithCost(bcrypt.MinCost)

	user, err := a.Register(ctx, "alice", "", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.DisplayName, "display name defaults to handle")
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	_, err = a.Register(ctx, "alice", "Alice 2", "another password")
	assert.ErrorIs(t, err, ErrHandleTaken)

	_, err = a.Register(ctx, "bob", "Bob", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = a.Register(ctx, "Bob Smith", "Bob", "long enough")
	assert.ErrorIs(t, err, ErrInvalidHandle)

	got, err := a.Authenticate(ctx, "alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = a.Authenticate(ctx, "alice", "wrong horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Authenticate(ctx, "nobody", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
