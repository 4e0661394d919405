package user

import (
	"context"
	"testing"

	"allergysafe-be/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		r := NewRegistry()

		acc, err := r.Register(ctx, "sarra@example.com", "secret123", session.RoleClient)
		require.NoError(t, err)
		assert.Equal(t, "sarra@example.com", acc.Email)
		assert.Equal(t, session.RoleClient, acc.Role)
		assert.NotEqual(t, "secret123", acc.PasswordHash)
	})

	t.Run("Email normalized", func(t *testing.T) {
		r := NewRegistry()

		_, err := r.Register(ctx, "  Vendeur@Example.com ", "secret123", session.RoleSeller)
		require.NoError(t, err)

		_, err = r.Verify("vendeur@example.com", "secret123")
		assert.NoError(t, err)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		r := NewRegistry()

		_, err := r.Register(ctx, "dup@example.com", "secret123", session.RoleClient)
		require.NoError(t, err)

		_, err = r.Register(ctx, "dup@example.com", "other456", session.RoleSeller)
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		r := NewRegistry()

		_, err := r.Register(ctx, "", "secret123", session.RoleClient)
		assert.ErrorIs(t, err, ErrInvalidEmail)

		_, err = r.Register(ctx, "no-at-sign", "secret123", session.RoleClient)
		assert.ErrorIs(t, err, ErrInvalidEmail)

		_, err = r.Register(ctx, "a@b.com", "short", session.RoleClient)
		assert.ErrorIs(t, err, ErrWeakPassword)

		_, err = r.Register(ctx, "a@b.com", "secret123", session.RoleAdmin)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestRegistry_Verify(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	_, err := r.Register(ctx, "sarra@example.com", "secret123", session.RoleClient)
	require.NoError(t, err)

	t.Run("Correct password", func(t *testing.T) {
		acc, err := r.Verify("sarra@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, session.RoleClient, acc.Role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := r.Verify("sarra@example.com", "wrong")
		assert.ErrorIs(t, err, ErrUnknownAccount)
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := r.Verify("ghost@example.com", "secret123")
		assert.ErrorIs(t, err, ErrUnknownAccount)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("other", hash))
}
